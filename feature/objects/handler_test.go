package objects

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"bucket-manager/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	t.Helper()
	app := fiber.New()
	mockClient := new(mocks.Client)
	mockClient.On("ListBuckets", mock.Anything).
		Return([]minio.BucketInfo{{Name: "test-bucket"}}, nil).Once()

	svc, err := NewService(context.Background(), mockClient, "test-bucket", zap.NewNop(), nil)
	require.NoError(t, err)
	NewHandler(svc).RegisterRoutes(app)
	return app, mockClient
}

func TestHandleList(t *testing.T) {
	t.Run("FilesOnly", func(t *testing.T) {
		app, mockClient := setupTestApp(t)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
			Return(objectsChannel("a.txt", "docs/", "docs/b.txt"))

		resp, err := app.Test(httptest.NewRequest("GET", "/objects/", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body struct {
			Bucket  string   `json:"bucket"`
			Objects []string `json:"objects"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "test-bucket", body.Bucket)
		assert.Equal(t, []string{"a.txt", "docs/b.txt"}, body.Objects)
	})

	t.Run("AllIncludesMarkers", func(t *testing.T) {
		app, mockClient := setupTestApp(t)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
			Return(objectsChannel("a.txt", "docs/"))

		resp, err := app.Test(httptest.NewRequest("GET", "/objects/?all=true", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body struct {
			Objects []string `json:"objects"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, []string{"a.txt", "docs/"}, body.Objects)
	})
}

func TestHandleStat(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		app, mockClient := setupTestApp(t)
		mockClient.On("StatObject", mock.Anything, "test-bucket", "a.txt", mock.Anything).
			Return(minio.ObjectInfo{Size: 42}, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/objects/stat?key=a.txt", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var headers ObjectHeaders
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&headers))
		assert.Equal(t, int64(42), headers.ContentLength)
	})

	t.Run("NotFound", func(t *testing.T) {
		app, mockClient := setupTestApp(t)
		mockClient.On("StatObject", mock.Anything, "test-bucket", "missing.txt", mock.Anything).
			Return(minio.ObjectInfo{}, errNoSuchKey)

		resp, err := app.Test(httptest.NewRequest("GET", "/objects/stat?key=missing.txt", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("MissingKeyParam", func(t *testing.T) {
		app, _ := setupTestApp(t)
		resp, err := app.Test(httptest.NewRequest("GET", "/objects/stat", nil))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestHandleDownload(t *testing.T) {
	t.Run("StreamsBody", func(t *testing.T) {
		app, mockClient := setupTestApp(t)
		content := []byte("file body")
		mockClient.On("StatObject", mock.Anything, "test-bucket", "a.txt", mock.Anything).
			Return(minio.ObjectInfo{Size: int64(len(content))}, nil)
		mockClient.On("GetObject", mock.Anything, "test-bucket", "a.txt", mock.Anything).
			Return(io.NopCloser(bytes.NewReader(content)), nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/objects/download?key=a.txt", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		got, _ := io.ReadAll(resp.Body)
		assert.Equal(t, content, got)
	})

	t.Run("NotFound", func(t *testing.T) {
		app, mockClient := setupTestApp(t)
		mockClient.On("StatObject", mock.Anything, "test-bucket", "missing.txt", mock.Anything).
			Return(minio.ObjectInfo{}, errNoSuchKey)

		resp, err := app.Test(httptest.NewRequest("GET", "/objects/download?key=missing.txt", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestHandleSha256(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("StatObject", mock.Anything, "test-bucket", "a.txt", mock.Anything).
		Return(minio.ObjectInfo{Size: 5}, nil)
	mockClient.On("GetObject", mock.Anything, "test-bucket", "a.txt", mock.Anything).
		Return(io.NopCloser(strings.NewReader("hello")), nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/objects/sha256?key=a.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	// sha256("hello")
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", body["sha256"])
}

func uploadRequest(t *testing.T, key, filename, content, metadata string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	if metadata != "" {
		require.NoError(t, w.WriteField("metadata", metadata))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/objects/?key="+key, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestHandleUpload(t *testing.T) {
	t.Run("StoresSpooledBodyWithMetadata", func(t *testing.T) {
		app, mockClient := setupTestApp(t)

		var gotBody []byte
		mockClient.On("FPutObject", mock.Anything, "test-bucket", "report.bin", mock.Anything,
			mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
				return assert.ObjectsAreEqual(map[string]string{"owner": "qa"}, opts.UserMetadata)
			})).
			Run(func(args mock.Arguments) {
				gotBody, _ = os.ReadFile(args.String(3))
			}).
			Return(minio.UploadInfo{}, nil)

		resp, err := app.Test(uploadRequest(t, "report.bin", "report.bin", "CONTENT", `{"owner":"qa"}`))
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
		assert.Equal(t, []byte("CONTENT"), gotBody)
	})

	t.Run("CollidingFilenamesSpoolSeparately", func(t *testing.T) {
		app, mockClient := setupTestApp(t)

		// Same client-supplied filename must never share a spool file: the
		// spool path has to be unique per request.
		var spools []string
		var bodies []string
		mockClient.On("FPutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				path := args.String(3)
				data, _ := os.ReadFile(path)
				spools = append(spools, path)
				bodies = append(bodies, string(data))
			}).
			Return(minio.UploadInfo{}, nil)

		resp, err := app.Test(uploadRequest(t, "a", "report.bin", "CONTENT-A", ""))
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)

		resp, err = app.Test(uploadRequest(t, "b", "report.bin", "CONTENT-B", ""))
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)

		require.Len(t, spools, 2)
		assert.NotEqual(t, spools[0], spools[1])
		assert.Equal(t, []string{"CONTENT-A", "CONTENT-B"}, bodies)
	})

	t.Run("InvalidMetadataJSON", func(t *testing.T) {
		app, mockClient := setupTestApp(t)

		resp, err := app.Test(uploadRequest(t, "a", "report.bin", "CONTENT", `not-json`))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		mockClient.AssertNotCalled(t, "FPutObject",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MissingFileField", func(t *testing.T) {
		app, _ := setupTestApp(t)

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.Close())
		req := httptest.NewRequest("POST", "/objects/?key=a", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestHandleUpdateMetadata(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		app, mockClient := setupTestApp(t)
		mockClient.On("StatObject", mock.Anything, "test-bucket", "missing.txt", mock.Anything).
			Return(minio.ObjectInfo{}, errNoSuchKey)

		req := httptest.NewRequest("PUT", "/objects/metadata?key=missing.txt",
			strings.NewReader(`{"owner":"qa"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		mockClient.AssertNotCalled(t, "CopyObject", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Replaced", func(t *testing.T) {
		app, mockClient := setupTestApp(t)
		mockClient.On("StatObject", mock.Anything, "test-bucket", "a.txt", mock.Anything).
			Return(minio.ObjectInfo{Size: 1}, nil)
		mockClient.On("CopyObject", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)

		req := httptest.NewRequest("PUT", "/objects/metadata?key=a.txt",
			strings.NewReader(`{"owner":"qa"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})
}

func TestHandleDelete(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("StatObject", mock.Anything, "test-bucket", "a.txt", mock.Anything).
		Return(minio.ObjectInfo{Size: 1}, nil)
	mockClient.On("RemoveObject", mock.Anything, "test-bucket", "a.txt", mock.Anything).
		Return(nil)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/objects/?key=a.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	mockClient.AssertCalled(t, "RemoveObject", mock.Anything, "test-bucket", "a.txt", mock.Anything)
}

func TestHandleBuckets(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("ListBuckets", mock.Anything).
		Return([]minio.BucketInfo{{Name: "alpha"}, {Name: "beta"}}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/buckets", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Buckets []string `json:"buckets"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"alpha", "beta"}, body.Buckets)
}
