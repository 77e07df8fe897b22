package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/TomerBass/DogNames/internal/consts"
	"github.com/TomerBass/DogNames/internal/modules/common/httpx"
	moduledto "github.com/TomerBass/DogNames/internal/modules/dog/dto"
	dogservice "github.com/TomerBass/DogNames/internal/modules/dog/service"
	platformservice "github.com/TomerBass/DogNames/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// Root serves the service metadata and endpoint directory.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": consts.ApplicationName,
		"version": consts.ApplicationVersion,
		"endpoints": gin.H{
			"search":   "/api/search?name=<dog_name>",
			"upload":   "/api/upload",
			"all_dogs": "/api/dogs",
		},
	})
}

// SearchDogs handles GET /api/search. A missing or empty name returns
// every dog.
func (h *Handler) SearchDogs(c *gin.Context) {
	dogs, err := h.dogService.Search(c.Query("name"))
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to search dogs")
		return
	}

	c.JSON(http.StatusOK, moduledto.SearchResponse{
		Count: len(dogs),
		Dogs:  moduledto.NewDogResponses(dogs),
	})
}

// GetAllDogs handles GET /api/dogs, newest first.
func (h *Handler) GetAllDogs(c *gin.Context) {
	dogs, err := h.dogService.ListAll()
	if err != nil {
		httpx.WriteServiceError(c, err, "failed to list dogs")
		return
	}

	c.JSON(http.StatusOK, moduledto.SearchResponse{
		Count: len(dogs),
		Dogs:  moduledto.NewDogResponses(dogs),
	})
}

// UploadDog handles POST /api/upload (multipart form).
func (h *Handler) UploadDog(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	dog, err := h.dogService.Upload(c.Request.Context(), dogservice.UploadRequest{
		Name:         c.PostForm("name"),
		Files:        form.File["files"],
		Age:          c.PostForm("age"),
		AdoptionDate: c.PostForm("adoption_date"),
		Location:     c.PostForm("location"),
		City:         c.PostForm("city"),
	})
	if err != nil {
		if _, ok := platformservice.AsServiceError(err); !ok {
			log.Printf("upload failed: %v", err)
		}
		httpx.WriteServiceError(c, err, "upload failed, please try again later")
		return
	}

	c.JSON(http.StatusOK, moduledto.UploadResponse{
		Message: "Dog uploaded successfully!",
		Dog:     moduledto.NewDogResponse(*dog),
	})
}

// DeleteDog handles DELETE /api/dogs/:id.
func (h *Handler) DeleteDog(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id parameter"})
		return
	}

	if err := h.dogService.Delete(c.Request.Context(), uint(id)); err != nil {
		httpx.WriteServiceError(c, err, "failed to delete dog")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Dog deleted successfully"})
}
