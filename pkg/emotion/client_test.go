package emotion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredict_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)

		err := r.ParseMultipartForm(10 << 20)
		require.NoError(t, err)
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "selfie.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"emotions": {"Senang": 82.4, "Netral": 10.1, "Sedih": 7.5},
			"max_emotion": "Senang",
			"max_percentage": 82.4
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	prediction, err := client.Predict(context.Background(), "selfie.jpg", strings.NewReader("fake-image-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "Senang", prediction.MaxEmotion)
	assert.InDelta(t, 82.4, prediction.MaxPercentage, 0.001)
	assert.InDelta(t, 10.1, prediction.Emotions["Netral"], 0.001)
}

// The inference service reads the upload from form field "file" and
// rejects anything else with a missing-file error. Sending under the
// right field name must never be mistaken for a face-detection failure.
func TestPredict_SendsFileField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := r.ParseMultipartForm(10 << 20)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		if _, _, err := r.FormFile("file"); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": "Tidak ada file gambar yang diunggah"}`))
			return
		}
		w.Write([]byte(`{
			"emotions": {"Netral": 91.0},
			"max_emotion": "Netral",
			"max_percentage": 91.0
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	prediction, err := client.Predict(context.Background(), "selfie.jpg", strings.NewReader("fake-image-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "Netral", prediction.MaxEmotion)
}

func TestPredict_NoFace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "Tidak ada wajah terdeteksi pada gambar"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Predict(context.Background(), "wall.png", strings.NewReader("fake-image-bytes"))

	assert.ErrorIs(t, err, ErrNoFace)
}

func TestPredict_OtherBadRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "Nama file kosong"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Predict(context.Background(), "", strings.NewReader("fake-image-bytes"))

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoFace)
	assert.Contains(t, err.Error(), "Nama file kosong")
}

func TestPredict_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Predict(context.Background(), "selfie.jpg", strings.NewReader("fake-image-bytes"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
