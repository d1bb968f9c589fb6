package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"outfit-recommender/models"
)

// DriveWardrobeSource reads wardrobe images from a Google Drive folder.
// Paths are Drive file IDs.
type DriveWardrobeSource struct {
	client   *drive.Service
	folderID string
}

// Ensure DriveWardrobeSource implements WardrobeSourceInterface
var _ WardrobeSourceInterface = (*DriveWardrobeSource)(nil)

// NewDriveWardrobeSource creates a new DriveWardrobeSource instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveWardrobeSource(ctx context.Context, credentialsPath, folderID string) (*DriveWardrobeSource, error) {
	if folderID == "" {
		return nil, fmt.Errorf("drive folder ID is required")
	}

	opts := []option.ClientOption{option.WithScopes(drive.DriveReadonlyScope)}
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveWardrobeSource{
		client:   driveService,
		folderID: folderID,
	}, nil
}

var driveImageMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
}

// List lists all JPEG files in the Drive folder ordered by name
func (ds *DriveWardrobeSource) List(ctx context.Context) ([]models.WardrobeFile, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", ds.folderID)

	var files []models.WardrobeFile
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Context(ctx).
			Q(query).
			OrderBy("name").
			Fields("nextPageToken, files(id, name, mimeType)")

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		for _, file := range r.Files {
			if !driveImageMimeTypes[strings.ToLower(file.MimeType)] {
				continue
			}
			files = append(files, models.WardrobeFile{Name: file.Name, Path: file.Id})
		}

		pageToken = r.NextPageToken
		if pageToken == "" {
			break
		}
	}

	log.Printf("📦 Listed %d images in Drive folder %s", len(files), ds.folderID)
	return files, nil
}

// Open downloads the content of a Drive file
func (ds *DriveWardrobeSource) Open(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := ds.client.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download drive file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read drive file %s: %w", fileID, err)
	}
	return data, nil
}
