package weaviate

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Backup storage backends. The backend module must be enabled on the
// instance.
const (
	BackendFilesystem = "filesystem"
	BackendS3         = "s3"
	BackendGCS        = "gcs"
	BackendAzure      = "azure"
)

// Backup lifecycle statuses, for both creation and restore.
const (
	BackupStarted      = "STARTED"
	BackupTransferring = "TRANSFERRING"
	BackupTransferred  = "TRANSFERRED"
	BackupSuccess      = "SUCCESS"
	BackupFailed       = "FAILED"
)

// BackupCreateRequest starts a backup. An empty Include means all
// classes; Include and Exclude are mutually exclusive server-side.
type BackupCreateRequest struct {
	ID      string   `json:"id"`
	Include []string `json:"include,omitempty"`
	Exclude []string `json:"exclude,omitempty"`
}

// BackupRestoreRequest starts a restore of an existing backup.
type BackupRestoreRequest struct {
	Include []string `json:"include,omitempty"`
	Exclude []string `json:"exclude,omitempty"`
}

// BackupResponse reports a backup or restore operation. Classes is
// only present on the initial create/restore response; status polls
// carry ID, Path, Status and Error.
type BackupResponse struct {
	ID      string   `json:"id"`
	Backend string   `json:"backend"`
	Classes []string `json:"classes,omitempty"`
	Path    string   `json:"path,omitempty"`
	Status  string   `json:"status"`
	Error   string   `json:"error,omitempty"`
}

// BackupsClient wraps the /v1/backups endpoints. Creation and restore
// run asynchronously: the initial call returns STARTED and the status
// endpoints are polled until SUCCESS or FAILED.
type BackupsClient struct {
	t   *transport
	obs *observer
}

// Create starts a backup on the given backend.
func (b *BackupsClient) Create(ctx context.Context, backend string, req *BackupCreateRequest) (_ *BackupResponse, err error) {
	start := time.Now()
	defer func() { b.obs.observe("backups.create", start, err) }()

	var out BackupResponse
	if err = b.t.do(ctx, http.MethodPost, backupPath(backend), nil, req, &out); err != nil {
		return nil, fmt.Errorf("create backup: %w", err)
	}
	return &out, nil
}

// CreateStatus polls the progress of a backup.
func (b *BackupsClient) CreateStatus(ctx context.Context, backend, id string) (_ *BackupResponse, err error) {
	start := time.Now()
	defer func() { b.obs.observe("backups.create_status", start, err) }()

	var out BackupResponse
	if err = b.t.do(ctx, http.MethodGet, backupPath(backend)+"/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("get backup status: %w", err)
	}
	return &out, nil
}

// Restore starts restoring a finished backup. A nil req restores every
// class the backup contains.
func (b *BackupsClient) Restore(ctx context.Context, backend, id string, req *BackupRestoreRequest) (_ *BackupResponse, err error) {
	start := time.Now()
	defer func() { b.obs.observe("backups.restore", start, err) }()

	if req == nil {
		req = &BackupRestoreRequest{}
	}

	var out BackupResponse
	path := backupPath(backend) + "/" + url.PathEscape(id) + "/restore"
	if err = b.t.do(ctx, http.MethodPost, path, nil, req, &out); err != nil {
		return nil, fmt.Errorf("restore backup: %w", err)
	}
	return &out, nil
}

// RestoreStatus polls the progress of a restore.
func (b *BackupsClient) RestoreStatus(ctx context.Context, backend, id string) (_ *BackupResponse, err error) {
	start := time.Now()
	defer func() { b.obs.observe("backups.restore_status", start, err) }()

	var out BackupResponse
	path := backupPath(backend) + "/" + url.PathEscape(id) + "/restore"
	if err = b.t.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("get restore status: %w", err)
	}
	return &out, nil
}

func backupPath(backend string) string {
	return "/v1/backups/" + url.PathEscape(backend)
}
