package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/TomerBass/DogNames/internal/consts"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Cloudinary uploads images under a folder namespace, using the filename
// stem as the public ID and overwriting any existing object with the same
// ID. Identifiers are fully qualified delivery URLs.
type Cloudinary struct {
	client *cloudinary.Cloudinary
	folder string
}

func NewCloudinary(rawURL, folder string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("configure cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true

	if folder == "" {
		folder = consts.CloudinaryFolder
	}
	return &Cloudinary{client: cld, folder: folder}, nil
}

func (c *Cloudinary) Store(ctx context.Context, data []byte, filename string) (string, error) {
	publicID := strings.TrimSuffix(filename, path.Ext(filename))

	resp, err := c.client.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:       c.folder,
		PublicID:     publicID,
		Overwrite:    api.Bool(true),
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload failed: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}

func (c *Cloudinary) Remove(ctx context.Context, identifier string) error {
	publicID, ok := publicIDFromURL(identifier)
	if !ok {
		return nil
	}
	_, err := c.client.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	return err
}

var versionSegment = regexp.MustCompile(`^v\d+$`)

// publicIDFromURL recovers the public ID from a delivery URL, e.g.
// https://res.cloudinary.com/demo/image/upload/v17/dogfinder/rex.jpg
// yields "dogfinder/rex". Identifiers that are not Cloudinary delivery
// URLs are reported as not ok.
func publicIDFromURL(identifier string) (string, bool) {
	u, err := url.Parse(identifier)
	if err != nil || u.Scheme == "" {
		return "", false
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, seg := range segments {
		if seg != "upload" || i+1 >= len(segments) {
			continue
		}
		rest := segments[i+1:]
		if versionSegment.MatchString(rest[0]) {
			rest = rest[1:]
		}
		if len(rest) == 0 {
			return "", false
		}
		id := strings.Join(rest, "/")
		return strings.TrimSuffix(id, path.Ext(id)), true
	}
	return "", false
}
