package archive

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"safety-tracker-backend/internal/config"
	apperrors "safety-tracker-backend/internal/errors"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportKey(t *testing.T) {
	at := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.FixedZone("EST", -5*3600))

	assert.Equal(t, "imports/20240305T193000Z-legacy.xlsx", ImportKey(at, "legacy.xlsx"))
	assert.Equal(t, "imports/20240305T193000Z-book.xls", ImportKey(at, `C:\Users\ops\book.xls`))
	assert.Equal(t, "imports/20240305T193000Z-workbook", ImportKey(at, ""))
}

func TestNew(t *testing.T) {
	store, err := New(context.Background(), &config.Config{ArchiveBackend: "none"})
	require.NoError(t, err)
	assert.IsType(t, Noop{}, store)
	assert.NoError(t, store.Put(context.Background(), "k", []byte("v")))

	store, err = New(context.Background(), &config.Config{ArchiveBackend: "fs", ArchiveDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FS{}, store)

	_, err = New(context.Background(), &config.Config{ArchiveBackend: "ftp"})
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestFS_Put(t *testing.T) {
	dir := t.TempDir()
	store := NewFS(dir)

	require.NoError(t, store.Put(context.Background(), "imports/a.xlsx", []byte("payload")))

	data, err := os.ReadFile(filepath.Join(dir, "imports", "a.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	assert.Error(t, store.Put(context.Background(), "../escape.xlsx", []byte("x")))
}

func TestFS_PutCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, NewFS(t.TempDir()).Put(ctx, "imports/a.xlsx", nil), context.Canceled)
}

type recordedRequest struct {
	method      string
	path        string
	contentType string
	body        []byte
}

func TestS3_Put(t *testing.T) {
	var (
		mu       sync.Mutex
		requests []recordedRequest
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		requests = append(requests, recordedRequest{r.Method, r.URL.Path, r.Header.Get("Content-Type"), body})
		mu.Unlock()
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store, err := NewS3(context.Background(),
		S3Config{Bucket: "archive", Region: "us-east-1", Endpoint: server.URL, PathStyle: true},
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("AKIA", "SECRET", "")),
	)
	require.NoError(t, err)

	require.NoError(t, store.Put(context.Background(), "imports/legacy.xlsx", []byte("workbook-bytes")))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPut, requests[0].method)
	assert.Equal(t, "/archive/imports/legacy.xlsx", requests[0].path)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", requests[0].contentType)
	assert.True(t, bytes.Contains(requests[0].body, []byte("workbook-bytes")))
}

func TestS3_PutFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	store, err := NewS3(context.Background(),
		S3Config{Bucket: "archive", Endpoint: server.URL, PathStyle: true},
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("AKIA", "SECRET", "")),
		awsconfig.WithRetryMaxAttempts(1),
	)
	require.NoError(t, err)

	err = store.Put(context.Background(), "imports/legacy.xls", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "archive")
}

func TestNewS3_RequiresBucket(t *testing.T) {
	_, err := NewS3(context.Background(), S3Config{})
	assert.Error(t, err)
}
