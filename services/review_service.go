package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/lin-avraham/Pizza2/models"
	"github.com/lin-avraham/Pizza2/repository"
	"github.com/lin-avraham/Pizza2/utils"
	"github.com/sirupsen/logrus"
)

type ReviewErrorKind string

const (
	ReviewValidation  ReviewErrorKind = "validation"
	ReviewIO          ReviewErrorKind = "io"
	ReviewPersistence ReviewErrorKind = "persistence"
)

// ReviewError says which stage of review creation failed.
type ReviewError struct {
	Kind ReviewErrorKind
	Err  error
}

func (e *ReviewError) Error() string {
	return fmt.Sprintf("review %s failure: %v", e.Kind, e.Err)
}

func (e *ReviewError) Unwrap() error {
	return e.Err
}

// Upload is an attached image file.
type Upload struct {
	Filename string
	Content  io.Reader
}

type ReviewInput struct {
	CustomerName string
	ReviewText   string
	Rating       string
	Image        *Upload
}

type ReviewService struct {
	reviews   repository.ReviewRepository
	uploadDir string
}

func NewReviewService(reviews repository.ReviewRepository, uploadDir string) *ReviewService {
	return &ReviewService{reviews: reviews, uploadDir: uploadDir}
}

// SanitizeFilename reduces an untrusted upload name to a single safe path
// element made of ASCII letters, digits, '_', '-' and '.'.
func SanitizeFilename(name string) string {
	name = strings.NewReplacer("/", " ", "\\", " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '_' || r == '-' || r == '.':
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "._")
}

// CreateReview stores the review and, when attached, its image under the
// upload directory. Only the stored file name is persisted.
func (s *ReviewService) CreateReview(ctx context.Context, in ReviewInput, userID uint) (*models.Review, error) {
	switch {
	case strings.TrimSpace(in.CustomerName) == "":
		return nil, &ReviewError{Kind: ReviewValidation, Err: missingField("customer_name")}
	case strings.TrimSpace(in.ReviewText) == "":
		return nil, &ReviewError{Kind: ReviewValidation, Err: missingField("review_text")}
	}
	rating, err := strconv.Atoi(strings.TrimSpace(in.Rating))
	if err != nil {
		return nil, &ReviewError{Kind: ReviewValidation, Err: &ValidationError{Field: "rating", Message: "must be an integer"}}
	}

	review := models.Review{
		CustomerName: strings.TrimSpace(in.CustomerName),
		ReviewText:   in.ReviewText,
		Rating:       rating,
		UserID:       userID,
	}

	var storedPath string
	if in.Image != nil && in.Image.Filename != "" {
		stored, path, err := s.saveImage(in.Image)
		if err != nil {
			return nil, &ReviewError{Kind: ReviewIO, Err: err}
		}
		review.ReviewImage = &stored
		storedPath = path
	}

	if err := s.reviews.Create(ctx, &review); err != nil {
		utils.ErrorLogger.WithField("user_id", userID).Errorf("Error creating review: %v", err)
		if storedPath != "" {
			_ = os.Remove(storedPath)
		}
		return nil, &ReviewError{Kind: ReviewPersistence, Err: err}
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"review_id": review.ID,
		"user_id":   userID,
		"rating":    review.Rating,
	}).Info("Review created")
	return &review, nil
}

func (s *ReviewService) ListReviews(ctx context.Context) ([]models.Review, error) {
	return s.reviews.List(ctx)
}

// saveImage writes the upload as "<random>_<sanitized name>" so equal
// client names never overwrite each other.
func (s *ReviewService) saveImage(img *Upload) (string, string, error) {
	clean := SanitizeFilename(img.Filename)
	if clean == "" {
		clean = "image"
	}
	stored := strings.SplitN(uuid.NewString(), "-", 2)[0] + "_" + clean
	path := filepath.Join(s.uploadDir, stored)

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", "", fmt.Errorf("create image file: %w", err)
	}
	if _, err := io.Copy(out, img.Content); err != nil {
		out.Close()
		_ = os.Remove(path)
		return "", "", fmt.Errorf("write image file: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(path)
		return "", "", fmt.Errorf("close image file: %w", err)
	}
	return stored, path, nil
}
