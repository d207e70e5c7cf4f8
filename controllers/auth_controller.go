package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/e-learning-backend/models"
	"github.com/vnkhanh/e-learning-backend/utils"
)

// ====== INPUT STRUCTS ======
// Không validate format/độ mạnh, client cũ gửi gì nhận nấy
type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ====== HANDLERS ======
func Register(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Check username tồn tại
	var existing models.User
	err := db.Where("username = ?", input.Username).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is already taken"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request."})
		return
	}

	// Tạo user mới, TotalScore mặc định 0
	newUser := models.User{
		Username: input.Username,
		Password: input.Password,
		Email:    input.Email,
	}

	if err := db.Create(&newUser).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request."})
		return
	}

	// Trả nguyên bản ghi vừa tạo (kèm password, client cũ phụ thuộc field này)
	c.JSON(http.StatusOK, newUser)
}

func Login(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// So sánh password plaintext, đúng theo hành vi hệ thống cũ
	var user models.User
	err := db.Where("email = ? AND password = ?", input.Email, input.Password).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username or password"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing the request : " + err.Error()})
		return
	}

	token := utils.GenerateRandomToken()

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"totalScore": user.TotalScore,
		},
	})
}
