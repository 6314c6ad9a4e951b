package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lin-avraham/Pizza2/middlewares"
	"github.com/lin-avraham/Pizza2/services"
	"github.com/lin-avraham/Pizza2/utils"
)

// 10 MB kept in memory, the rest spills to temp files
const maxReviewMemory = 10 << 20

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

// SubmitReview accepts a multipart form with an optional review_image.
func (rc *ReviewController) SubmitReview(c *gin.Context) {
	principal, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, services.ErrUnauthorized)
		return
	}

	if err := c.Request.ParseMultipartForm(maxReviewMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("error processing form"))
		return
	}

	in := services.ReviewInput{
		CustomerName: c.PostForm("customer_name"),
		ReviewText:   c.PostForm("review_text"),
		Rating:       c.PostForm("rating"),
	}

	if fh, err := c.FormFile("review_image"); err == nil && fh.Filename != "" {
		f, err := fh.Open()
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("error reading image"))
			return
		}
		defer f.Close()
		in.Image = &services.Upload{Filename: fh.Filename, Content: f}
	}

	if _, err := rc.Reviews.CreateReview(c.Request.Context(), in, principal.UserID); err != nil {
		var rerr *services.ReviewError
		if !errors.As(err, &rerr) {
			utils.RespondError(c, http.StatusInternalServerError, nil)
			return
		}
		switch rerr.Kind {
		case services.ReviewValidation:
			utils.RespondError(c, http.StatusBadRequest, rerr.Err)
		case services.ReviewIO:
			utils.ErrorLogger.Printf("Error storing review image: %v", rerr.Err)
			utils.RespondError(c, http.StatusInternalServerError, errors.New("could not store image"))
		default:
			utils.RespondError(c, http.StatusInternalServerError, nil)
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK)
}
