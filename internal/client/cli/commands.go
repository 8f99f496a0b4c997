package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/accountkeeper/internal/client/client"
	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/filex"
	"github.com/dmitrijs2005/accountkeeper/internal/netx"
	pb "github.com/dmitrijs2005/accountkeeper/internal/proto"
)

const maxDownloadBytes = 20 << 20

// Test seams.
var (
	getSimpleText   = GetSimpleText
	getOptionalText = GetOptionalText
	getPassword     = GetPassword
	readFile        = os.ReadFile
	download        = netx.DownloadPresignedURL
)

func (a *App) Register(ctx context.Context) error {
	var in client.RegisterInput
	var err error

	if in.Username, err = getSimpleText(a.reader, "Enter username", a.out); err != nil {
		return err
	}
	if in.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if in.FullName, err = getSimpleText(a.reader, "Enter full name", a.out); err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	in.Password = string(password)

	avatarPath, err := getSimpleText(a.reader, "Path to avatar image", a.out)
	if err != nil {
		return err
	}
	if in.Avatar, err = readFile(avatarPath); err != nil {
		return fmt.Errorf("read avatar: %w", err)
	}

	coverPath, err := getOptionalText(a.reader, "Path to cover image", a.out)
	if err != nil {
		return err
	}
	if coverPath != nil {
		if in.CoverImage, err = readFile(*coverPath); err != nil {
			return fmt.Errorf("read cover image: %w", err)
		}
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.client.Register(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Registered %s, you can log in now.\n", u.Username)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter username or email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.client.Login(ctx, identifier, string(password))
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			return errors.New("wrong username, email or password")
		}
		return err
	}
	fmt.Fprintln(a.out, "Login successful")
	a.printUser(u)
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.client.CurrentUser(ctx)
	if err != nil {
		return err
	}
	a.printUser(u)
	return nil
}

func (a *App) Update(ctx context.Context) error {
	fullName, err := getOptionalText(a.reader, "New full name", a.out)
	if err != nil {
		return err
	}
	email, err := getOptionalText(a.reader, "New email", a.out)
	if err != nil {
		return err
	}
	if fullName == nil && email == nil {
		fmt.Fprintln(a.out, "Nothing to update")
		return nil
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.client.UpdateAccountDetails(ctx, fullName, email)
	if err != nil {
		return err
	}
	a.printUser(u)
	return nil
}

func (a *App) Avatar(ctx context.Context) error {
	return a.updateImage(ctx, "Path to avatar image", a.client.UpdateAvatar)
}

func (a *App) Cover(ctx context.Context) error {
	return a.updateImage(ctx, "Path to cover image", a.client.UpdateCoverImage)
}

func (a *App) updateImage(ctx context.Context, prompt string, upload func(context.Context, []byte) (*pb.User, error)) error {
	path, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	image, err := readFile(path)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := upload(ctx, image)
	if err != nil {
		return err
	}
	a.printUser(u)
	return nil
}

// Download saves the avatar or cover image of the current user to a file.
func (a *App) Download(ctx context.Context) error {
	which, err := getSimpleText(a.reader, "Which image (avatar or cover)", a.out)
	if err != nil {
		return err
	}
	if which != "avatar" && which != "cover" {
		return fmt.Errorf("unknown image %q", which)
	}
	path, err := getSimpleText(a.reader, "Save to", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.client.CurrentUser(ctx)
	if err != nil {
		return err
	}
	url := u.Avatar
	if which == "cover" {
		url = u.CoverImage
	}
	if url == "" {
		return fmt.Errorf("no %s image set", which)
	}

	data, err := download(ctx, url, maxDownloadBytes)
	if err != nil {
		return err
	}
	if err := filex.WritePrivateFile(path, data); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved %d bytes to %s\n", len(data), path)
	return nil
}

func (a *App) Passwd(ctx context.Context) error {
	oldPassword, err := getPassword("Current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPassword)

	newPassword, err := getPassword("New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.ChangePassword(ctx, string(oldPassword), string(newPassword)); err != nil {
		return err
	}
	a.user = ""
	fmt.Fprintln(a.out, "Password changed. All sessions were ended, please log in again.")
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Refresh(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Tokens refreshed")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Logout(ctx); err != nil {
		return err
	}
	a.user = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
