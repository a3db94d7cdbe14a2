package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorhub/mentorhub-client/internal/api"
	"github.com/mentorhub/mentorhub-client/internal/models"
	"github.com/mentorhub/mentorhub-client/pkg/errors"
)

func TestProfileClient_CreateProfile_Multipart(t *testing.T) {
	core, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/profile/create", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "123", r.FormValue("userId"))
		assert.Equal(t, "Ada", r.FormValue("firstName"))
		assert.Equal(t, "Lovelace", r.FormValue("lastName"))
		assert.Equal(t, "First programmer", r.FormValue("bio"))
		assert.Equal(t, "28", r.FormValue("age"))

		var info models.StudentInfo
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("studentInfo")), &info))
		assert.Equal(t, "University", info.EducationLevel)
		assert.Empty(t, r.FormValue("mentorInfo"))

		file, header, err := r.FormFile("profilePicture")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "me.png", header.Filename)

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(data))

		w.WriteHeader(http.StatusCreated)
	}))

	client := api.NewProfileClient(core)
	err := client.CreateProfile(context.Background(),
		models.ProfileRequest{
			UserID:    123,
			FirstName: "Ada",
			LastName:  "Lovelace",
			Bio:       "First programmer",
			Age:       28,
		},
		&models.StudentInfo{EducationLevel: "University", LearningGoals: "Analytical engines"},
		nil,
		api.Upload{Filename: "me.png", Reader: strings.NewReader("png-bytes")},
	)
	require.NoError(t, err)
}

func TestProfileClient_CreateProfile_MissingPicture(t *testing.T) {
	core, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected without a picture")
	}))

	client := api.NewProfileClient(core)
	err := client.CreateProfile(context.Background(), models.ProfileRequest{UserID: 1}, nil, nil, api.Upload{})
	assert.ErrorIs(t, err, errors.ErrValidation)
}

func TestProfileClient_GetProfile(t *testing.T) {
	core, _ := authedTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/profile", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "Bearer "))

		json.NewEncoder(w).Encode(models.UserProfile{
			FirstName:      "Grace",
			Specialization: "Compilers",
			AverageRating:  4.5,
		})
	}))

	client := api.NewProfileClient(core)
	profile, err := client.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Grace", profile.FirstName)
	assert.Equal(t, 4.5, profile.AverageRating)
}

func TestProfileClient_UpdateProfile_OmitsNilFields(t *testing.T) {
	var rawBody []byte
	core, _ := authedTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/user/update-profile", r.URL.Path)

		var err error
		rawBody, err = io.ReadAll(r.Body)
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	}))

	bio := "Updated bio"
	client := api.NewProfileClient(core)
	require.NoError(t, client.UpdateProfile(context.Background(), models.ProfileUpdateRequest{Bio: &bio}))

	assert.JSONEq(t, `{"bio":"Updated bio"}`, string(rawBody))
}

func TestProfileClient_GetProfilePicture(t *testing.T) {
	core, _ := authedTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/profile-picture", r.URL.Path)
		json.NewEncoder(w).Encode(models.ProfilePicture{ProfilePictureURL: "https://cdn/x.png"})
	}))

	client := api.NewProfileClient(core)
	picture, err := client.GetProfilePicture(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/x.png", picture.ProfilePictureURL)
}

func TestProfileClient_UpdateProfilePicture(t *testing.T) {
	core, _ := authedTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/update-profile-picture", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("profilePicture")
		require.NoError(t, err)
		assert.Equal(t, "new.jpg", header.Filename)
		w.WriteHeader(http.StatusOK)
	}))

	client := api.NewProfileClient(core)
	err := client.UpdateProfilePicture(context.Background(), api.Upload{
		Filename: "new.jpg",
		Reader:   strings.NewReader("jpg-bytes"),
	})
	require.NoError(t, err)
}
