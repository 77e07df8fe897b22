package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/TomerBass/DogNames/internal/consts"
	"github.com/TomerBass/DogNames/internal/model"
	platformservice "github.com/TomerBass/DogNames/internal/platform/service"
	"github.com/TomerBass/DogNames/internal/utils"
)

const jpegQuality = 90

type UploadRequest struct {
	Name         string
	Files        []*multipart.FileHeader
	Age          string
	AdoptionDate string
	Location     string
	City         string
}

// Upload validates and stores every submitted file in order, then creates
// exactly one dog row referencing all stored identifiers. If any file
// fails after earlier ones were stored, the already-stored images are
// removed again before the error is returned, so a failed request leaves
// no orphaned objects behind.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (*model.Dog, error) {
	name := strings.TrimSpace(req.Name)
	if nameLen := utf8.RuneCountInString(name); nameLen == 0 || nameLen > consts.MaxNameLen {
		return nil, platformservice.NewValidationError(
			fmt.Sprintf("name is required and must be 1-%d characters", consts.MaxNameLen))
	}
	if len(req.Files) == 0 {
		return nil, platformservice.NewValidationError("at least one file is required")
	}

	adoptionDate, err := parseAdoptionDate(req.AdoptionDate)
	if err != nil {
		return nil, err
	}

	var savedImages []string
	fail := func(err error) (*model.Dog, error) {
		s.cleanupStored(ctx, savedImages)
		return nil, err
	}

	for _, file := range req.Files {
		data, filename, err := s.processFile(file)
		if err != nil {
			return fail(err)
		}

		identifier, err := s.sink.Store(ctx, data, filename)
		if err != nil {
			log.Printf("store image %q: %v", filename, err)
			return fail(platformservice.NewInternalError(
				fmt.Sprintf("failed to save file %s", file.Filename)))
		}
		savedImages = append(savedImages, identifier)
	}

	imagesJSON, err := json.Marshal(savedImages)
	if err != nil {
		return fail(platformservice.NewInternalError("failed to encode image list"))
	}

	dog := &model.Dog{
		Name:         name,
		ImagePath:    savedImages[0],
		ImagesJSON:   string(imagesJSON),
		AdoptionDate: adoptionDate,
		Age:          optional(req.Age),
		Location:     optional(req.Location),
		City:         optional(req.City),
	}

	if err := s.dogStore.Create(dog); err != nil {
		log.Printf("create dog row: %v", err)
		return fail(platformservice.NewInternalError("failed to create database entry"))
	}

	return dog, nil
}

// processFile runs the per-file validation chain: extension allow-list,
// size ceiling, structural decode. HEIF payloads come back transcoded to
// JPEG with the logical filename rewritten to .jpg.
func (s *Service) processFile(file *multipart.FileHeader) ([]byte, string, error) {
	ext := utils.NormalizedExt(file.Filename)
	if !consts.AllowedExtensions[ext] {
		return nil, "", platformservice.NewValidationError(
			fmt.Sprintf("invalid file type for %s. Allowed: jpg, jpeg, png, gif, heic, heif", file.Filename))
	}

	if file.Size > consts.MaxFileSize {
		return nil, "", fileTooLarge(file.Filename)
	}

	src, err := file.Open()
	if err != nil {
		return nil, "", platformservice.NewValidationError(
			fmt.Sprintf("could not read file %s", file.Filename))
	}
	defer func() { _ = src.Close() }()

	data, err := io.ReadAll(io.LimitReader(src, consts.MaxFileSize+1))
	if err != nil {
		return nil, "", platformservice.NewValidationError(
			fmt.Sprintf("could not read file %s", file.Filename))
	}
	// The multipart header size is client-supplied; trust the bytes.
	if len(data) > consts.MaxFileSize {
		return nil, "", fileTooLarge(file.Filename)
	}

	img, err := utils.DecodeImage(data, ext)
	if err != nil {
		return nil, "", platformservice.NewValidationError(
			fmt.Sprintf("invalid image file: %s - %v", file.Filename, err))
	}

	filename := file.Filename
	if utils.IsHEIC(ext) {
		data, err = utils.EncodeJPEG(img, jpegQuality)
		if err != nil {
			return nil, "", platformservice.NewInternalError(
				fmt.Sprintf("failed to convert %s to JPEG", file.Filename))
		}
		filename = utils.ReplaceExt(filename, ".jpg")
	}

	return data, filename, nil
}

func (s *Service) cleanupStored(ctx context.Context, identifiers []string) {
	for _, identifier := range identifiers {
		if err := s.sink.Remove(ctx, identifier); err != nil {
			log.Printf("cleanup of stored image %q failed: %v", identifier, err)
		}
	}
}

// parseAdoptionDate accepts an ISO calendar date. A present but malformed
// value is a validation error; absence leaves the field unset.
func parseAdoptionDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, platformservice.NewValidationError(
			fmt.Sprintf("invalid adoption_date %q, expected YYYY-MM-DD", raw))
	}
	return &parsed, nil
}

func fileTooLarge(filename string) error {
	return platformservice.NewValidationError(
		fmt.Sprintf("file %s too large. Maximum size: %.1fMB",
			filename, float64(consts.MaxFileSize)/(1024*1024)))
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
