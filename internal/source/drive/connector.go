package drive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/my2582/fin-tips/internal"
	"github.com/my2582/fin-tips/internal/config"
)

const (
	googleSheetMIME = "application/vnd.google-apps.spreadsheet"
	xlsxMIME        = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Connector struct {
	service *drive.Service
}

func NewConnector(ctx context.Context, cfg config.Config) (*Connector, error) {
	if err := cfg.Require("DRIVE_CLIENT_ID", cfg.DriveClientID); err != nil {
		return nil, err
	}
	if err := cfg.Require("DRIVE_CLIENT_SECRET", cfg.DriveClientSecret); err != nil {
		return nil, err
	}
	if err := cfg.Require("DRIVE_REFRESH_TOKEN", cfg.DriveRefreshToken); err != nil {
		return nil, err
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.DriveClientID,
		ClientSecret: cfg.DriveClientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  cfg.DriveRedirectURI,
		Scopes:       []string{drive.DriveReadonlyScope},
	}

	tokenSource := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.DriveRefreshToken})
	svc, err := drive.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &Connector{service: svc}, nil
}

// Fetch downloads the workbook file. A native Google Sheet is exported as
// XLSX; anything stored as a regular file comes down as is.
func (c *Connector) Fetch(ctx context.Context, fileID string) (internal.FetchedWorkbook, error) {
	meta, err := c.service.Files.Get(fileID).Fields("id", "name", "mimeType", "modifiedTime").Context(ctx).Do()
	if err != nil {
		return internal.FetchedWorkbook{}, fmt.Errorf("drive file metadata: %w", err)
	}

	name := meta.Name
	var resp *http.Response
	if meta.MimeType == googleSheetMIME {
		resp, err = c.service.Files.Export(fileID, xlsxMIME).Context(ctx).Download()
		if !strings.HasSuffix(strings.ToLower(name), ".xlsx") {
			name += ".xlsx"
		}
	} else {
		resp, err = c.service.Files.Get(fileID).Context(ctx).Download()
	}
	if err != nil {
		return internal.FetchedWorkbook{}, fmt.Errorf("drive download: %w", err)
	}
	defer resp.Body.Close()

	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		return internal.FetchedWorkbook{}, err
	}

	return internal.FetchedWorkbook{
		FileID:     meta.Id,
		Name:       name,
		MimeType:   meta.MimeType,
		ModifiedAt: meta.ModifiedTime,
		Blob:       blob,
	}, nil
}
