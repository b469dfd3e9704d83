package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"kickabout_server/models"
	"kickabout_server/services"
	"kickabout_server/utils"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// PhotoController handles profile photo uploads via presigned S3 URLs.
type PhotoController struct {
	UserService *services.UserService
}

// NewPhotoController creates a new PhotoController instance
func NewPhotoController(userService *services.UserService) *PhotoController {
	return &PhotoController{UserService: userService}
}

// UploadURL returns a presigned PUT URL the client uploads the photo to,
// along with the object key to confirm afterwards.
func (c *PhotoController) UploadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		utils.WriteError(w, http.StatusBadRequest, "fileName and fileType are required")
		return
	}

	url, key, err := services.GenerateUploadURL(r.Context(), payload.FileName, payload.FileType)
	if err != nil {
		log.Printf("Error generating upload URL: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to generate upload URL")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"url": url, "key": key})
}

// ConfirmUpload records the uploaded object key on the user's profile and
// returns a presigned read URL for it.
func (c *PhotoController) ConfirmUpload(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		utils.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := c.UserService.SetPhoto(r.Context(), userID, payload.Key)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			utils.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("Error recording photo for user %s: %v", userID, err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to upload photo")
		return
	}

	readURL, err := services.GenerateReadURL(r.Context(), payload.Key)
	if err != nil {
		log.Printf("Error generating read URL: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to generate read URL")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Photo uploaded successfully",
		"photo":   user.Photo,
		"url":     readURL,
	})
}

// DeletePhoto removes the stored photo and clears the profile reference.
func (c *PhotoController) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	user, err := c.UserService.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			utils.WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("Error fetching user %s: %v", userID, err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to delete photo")
		return
	}
	if user.Photo == "" {
		utils.WriteError(w, http.StatusBadRequest, models.ErrNoPhoto.Error())
		return
	}

	if err := services.DeleteObject(r.Context(), user.Photo); err != nil {
		log.Printf("Error deleting photo object %s: %v", user.Photo, err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to delete photo from storage")
		return
	}
	if err := c.UserService.ClearPhoto(r.Context(), userID); err != nil && !errors.Is(err, models.ErrNoPhoto) {
		log.Printf("Error clearing photo for user %s: %v", userID, err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to delete photo")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Profile photo deleted successfully"})
}
