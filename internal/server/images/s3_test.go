package images

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type fakeAPI struct {
	puts       []*s3.PutObjectInput
	bodies     [][]byte
	deletes    []string
	putErr     error
	headErr    error
	createErr  error
	createCall int
}

func (f *fakeAPI) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	body, _ := io.ReadAll(in.Body)
	f.puts = append(f.puts, in)
	f.bodies = append(f.bodies, body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeAPI) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deletes = append(f.deletes, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeAPI) HeadBucket(context.Context, *s3.HeadBucketInput, ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	return &s3.HeadBucketOutput{}, f.headErr
}

func (f *fakeAPI) CreateBucket(context.Context, *s3.CreateBucketInput, ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	f.createCall++
	return &s3.CreateBucketOutput{}, f.createErr
}

type fakePresigner struct {
	expires time.Duration
	err     error
}

func (f *fakePresigner) PresignGetObject(_ context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	var o s3.PresignOptions
	for _, fn := range optFns {
		fn(&o)
	}
	f.expires = o.Expires
	return &v4.PresignedHTTPRequest{URL: "http://s3.local/" + aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key) + "?sig=1"}, nil
}

func TestPut_UploadsImage(t *testing.T) {
	origNow := now
	t.Cleanup(func() { now = origNow })
	now = func() time.Time { return time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC) }

	api := &fakeAPI{}
	store := NewStore(api, &fakePresigner{}, "avatars", time.Hour, 1024)

	key, err := store.Put(context.Background(), models.ImageAvatar, pngHeader)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "avatar/2025/03/07/"), key)
	require.Len(t, api.puts, 1)
	assert.Equal(t, "avatars", aws.ToString(api.puts[0].Bucket))
	assert.Equal(t, key, aws.ToString(api.puts[0].Key))
	assert.Equal(t, "image/png", aws.ToString(api.puts[0].ContentType))
	assert.Equal(t, pngHeader, api.bodies[0])
}

func TestPut_Validation(t *testing.T) {
	api := &fakeAPI{}
	store := NewStore(api, &fakePresigner{}, "avatars", time.Hour, 16)

	tests := []struct {
		name   string
		data   []byte
		reason string
	}{
		{name: "empty", data: nil, reason: "is required"},
		{name: "too large", data: append(append([]byte{}, pngHeader...), make([]byte, 32)...), reason: "exceeds 16 bytes"},
		{name: "not an image", data: []byte("hello, world"), reason: "must be an image"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Put(context.Background(), models.ImageCover, tt.data)
			require.ErrorIs(t, err, common.ErrorValidation)

			var ve common.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "cover", ve.Field)
			assert.Equal(t, tt.reason, ve.Reason)
		})
	}
	assert.Empty(t, api.puts)
}

func TestPut_BackendError(t *testing.T) {
	api := &fakeAPI{putErr: errors.New("503")}
	store := NewStore(api, &fakePresigner{}, "avatars", time.Hour, 0)

	_, err := store.Put(context.Background(), models.ImageAvatar, pngHeader)
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorValidation)
}

func TestURL(t *testing.T) {
	pre := &fakePresigner{}
	store := NewStore(&fakeAPI{}, pre, "avatars", 30*time.Minute, 0)

	url, err := store.URL(context.Background(), "avatar/k")
	require.NoError(t, err)
	assert.Equal(t, "http://s3.local/avatars/avatar/k?sig=1", url)
	assert.Equal(t, 30*time.Minute, pre.expires)

	url, err = store.URL(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, url)

	pre.err = errors.New("no creds")
	_, err = store.URL(context.Background(), "avatar/k")
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	api := &fakeAPI{}
	store := NewStore(api, &fakePresigner{}, "avatars", time.Hour, 0)

	require.NoError(t, store.Delete(context.Background(), "avatar/old"))
	require.NoError(t, store.Delete(context.Background(), ""))
	assert.Equal(t, []string{"avatar/old"}, api.deletes)
}

func TestEnsureBucket(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		api := &fakeAPI{}
		require.NoError(t, NewStore(api, nil, "b", time.Hour, 0).EnsureBucket(context.Background()))
		assert.Zero(t, api.createCall)
	})
	t.Run("created", func(t *testing.T) {
		api := &fakeAPI{headErr: errors.New("404")}
		require.NoError(t, NewStore(api, nil, "b", time.Hour, 0).EnsureBucket(context.Background()))
		assert.Equal(t, 1, api.createCall)
	})
	t.Run("already owned", func(t *testing.T) {
		api := &fakeAPI{headErr: errors.New("403"), createErr: &types.BucketAlreadyOwnedByYou{}}
		require.NoError(t, NewStore(api, nil, "b", time.Hour, 0).EnsureBucket(context.Background()))
	})
	t.Run("create fails", func(t *testing.T) {
		api := &fakeAPI{headErr: errors.New("404"), createErr: errors.New("denied")}
		assert.Error(t, NewStore(api, nil, "b", time.Hour, 0).EnsureBucket(context.Background()))
	})
}

func TestNewS3Store_AppliesOptions(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "eu-north-1", lo.Region)
		require.NotNil(t, lo.Credentials)
		creds, err := lo.Credentials.Retrieve(ctx)
		require.NoError(t, err)
		assert.Equal(t, "minio", creds.AccessKeyID)
		return aws.Config{}, nil
	}

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}

	store, err := NewS3Store(context.Background(), Options{
		Region:       "eu-north-1",
		AccessKey:    "minio",
		SecretKey:    "minio-secret",
		BaseEndpoint: "http://127.0.0.1:9000",
		Bucket:       "avatars",
		URLValidity:  time.Hour,
		MaxBytes:     10,
	})
	require.NoError(t, err)
	require.NotNil(t, store)

	assert.True(t, opts.UsePathStyle)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000", *opts.BaseEndpoint)
	assert.Equal(t, "avatars", store.bucket)
}

func TestNewS3Store_ConfigError(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no config")
	}

	_, err := NewS3Store(context.Background(), Options{})
	assert.Error(t, err)
}
