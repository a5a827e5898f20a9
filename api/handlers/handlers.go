package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"travisco/apperr"
	"travisco/dto"
	"travisco/services"
	"travisco/vision"
)

// WelcomeHandler godoc
// @Summary      Welcome message
// @Tags         misc
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       / [get]
func WelcomeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Welcome to the Travisco App!"})
	}
}

// SignupHandler godoc
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Param        body  body  dto.SignupRequest  true  "Signup payload"
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /signup [post]
func SignupHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation(err.Error()))
			return
		}
		if err := svc.Signup(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Signup successful! Please check your email for verification."})
	}
}

// LoginHandler godoc
// @Summary      Log in
// @Description  Confirms an account exists for the email
// @Tags         auth
// @Accept       json
// @Param        body  body  dto.LoginRequest  true  "Login payload"
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /login [post]
func LoginHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperr.Validation(err.Error()))
			return
		}
		if err := svc.Login(c.Request.Context(), req.Email, req.Password); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Login successful!"})
	}
}

// FindMonumentHandler godoc
// @Summary      Identify a monument
// @Description  Accepts an image file or a text query and returns the identified monument
// @Tags         find
// @Accept       multipart/form-data
// @Param        file  formData  file    false  "Monument image"
// @Param        text  formData  string  false  "Text query"
// @Produce      json
// @Success      200  {object}  models.MonumentIdentification
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /find [post]
func FindMonumentHandler(svc *services.FinderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in vision.Input

		// The image takes priority when both are sent.
		if file, err := c.FormFile("file"); err == nil && file != nil {
			f, err := file.Open()
			if err != nil {
				respondError(c, apperr.Validation("Error processing image: "+err.Error()))
				return
			}
			defer f.Close()
			data, err := io.ReadAll(f)
			if err != nil {
				respondError(c, apperr.Validation("Error processing image: "+err.Error()))
				return
			}
			in.ImageData = data
			in.ImageMIME = file.Header.Get("Content-Type")
		} else {
			in.Text = c.PostForm("text")
		}

		id, err := svc.Find(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, id)
	}
}
