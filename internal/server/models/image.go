package models

// ImageKind selects which profile image column an operation touches.
type ImageKind string

const (
	ImageAvatar ImageKind = "avatar"
	ImageCover  ImageKind = "cover"
)

// Column returns the users table column holding the object key.
func (k ImageKind) Column() string {
	switch k {
	case ImageAvatar:
		return "avatar_key"
	case ImageCover:
		return "cover_image_key"
	default:
		return ""
	}
}
