package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/mentorhub/mentorhub-client/internal/models"
	"github.com/mentorhub/mentorhub-client/pkg/errors"
)

// ProfileClient creates and maintains the authenticated user's profile.
type ProfileClient struct {
	core *Client
}

// NewProfileClient creates a profile client over the shared request core.
func NewProfileClient(core *Client) *ProfileClient {
	return &ProfileClient{core: core}
}

// Upload is a named byte stream for multipart file parts.
type Upload struct {
	Filename string
	Reader   io.Reader
}

// CreateProfile submits the post-registration profile as multipart form
// data: plain fields, optional role-specific JSON parts, and the picture.
// Exactly one of studentInfo/mentorInfo is expected to be non-nil.
func (c *ProfileClient) CreateProfile(ctx context.Context, req models.ProfileRequest, studentInfo *models.StudentInfo, mentorInfo *models.MentorInfo, picture Upload) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"userId":    strconv.FormatInt(req.UserID, 10),
		"firstName": req.FirstName,
		"lastName":  req.LastName,
		"bio":       req.Bio,
		"age":       strconv.Itoa(req.Age),
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("write field %s: %w", name, err)
		}
	}

	if studentInfo != nil {
		if err := writeJSONPart(w, "studentInfo", studentInfo); err != nil {
			return err
		}
	}
	if mentorInfo != nil {
		if err := writeJSONPart(w, "mentorInfo", mentorInfo); err != nil {
			return err
		}
	}

	if err := writeFilePart(w, "profilePicture", picture); err != nil {
		return err
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	return c.core.request(ctx, "createProfile", http.MethodPost, "/profile/create", false, &buf, w.FormDataContentType(), nil)
}

// GetProfile fetches the authenticated user's profile.
func (c *ProfileClient) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.core.getJSON(ctx, "getProfile", "/user/profile", true, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies a partial update; nil fields are left untouched.
func (c *ProfileClient) UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) error {
	return c.core.putJSON(ctx, "updateProfile", "/user/update-profile", true, req, nil)
}

// GetProfilePicture fetches the authenticated user's picture URL.
func (c *ProfileClient) GetProfilePicture(ctx context.Context) (*models.ProfilePicture, error) {
	var picture models.ProfilePicture
	if err := c.core.getJSON(ctx, "getProfilePicture", "/user/profile-picture", true, &picture); err != nil {
		return nil, err
	}
	return &picture, nil
}

// UpdateProfilePicture replaces the profile picture via multipart upload.
func (c *ProfileClient) UpdateProfilePicture(ctx context.Context, picture Upload) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := writeFilePart(w, "profilePicture", picture); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	return c.core.request(ctx, "updateProfilePicture", http.MethodPost, "/user/update-profile-picture", true, &buf, w.FormDataContentType(), nil)
}

func writeJSONPart(w *multipart.Writer, name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s part: %w", name, err)
	}

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name=%q`, name)}
	header["Content-Type"] = []string{"application/json"}

	part, err := w.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create %s part: %w", name, err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("write %s part: %w", name, err)
	}
	return nil
}

func writeFilePart(w *multipart.Writer, name string, upload Upload) error {
	if upload.Reader == nil {
		return errors.ValidationError(name, "file is required")
	}

	part, err := w.CreateFormFile(name, upload.Filename)
	if err != nil {
		return fmt.Errorf("create %s part: %w", name, err)
	}
	if _, err := io.Copy(part, upload.Reader); err != nil {
		return fmt.Errorf("write %s part: %w", name, err)
	}
	return nil
}
