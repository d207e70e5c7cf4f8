package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/e-learning-backend/models"
)

// ====== VIEW STRUCTS ======
type ChapterInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CourseInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type VideoInfo struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	URL   string    `json:"url"`
}

type QuizInfo struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

type OptionInfo struct {
	Answer string `json:"answer"`
}

// Options là mảng 4 phần tử cố định theo option1..option4
type QuestionInfo struct {
	ID      uuid.UUID     `json:"id"`
	Text    string        `json:"text"`
	Options [4]OptionInfo `json:"options"`
}

type ChapterData struct {
	Chapter   ChapterInfo    `json:"chapter"`
	Course    *CourseInfo    `json:"course"`
	Videos    []VideoInfo    `json:"videos"`
	Quiz      *QuizInfo      `json:"quiz"`
	Questions []QuestionInfo `json:"questions"`
}

// GetChapterData gom chapter + course đầu tiên + videos của course đó
// + quiz đầu tiên + questions của quiz đó vào một view
func GetChapterData(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	chapterID, err := uuid.Parse(c.Param("chapterId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chapter data not found"})
		return
	}

	var chapter models.Chapter
	err = db.First(&chapter, "id = ?", chapterID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chapter data not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing the request : " + err.Error()})
		return
	}

	data := ChapterData{
		Chapter: ChapterInfo{
			ID:   chapter.ID,
			Name: chapter.ChapterName,
		},
		Videos:    []VideoInfo{},
		Questions: []QuestionInfo{},
	}

	// Course đầu tiên của chapter (thứ tự không đảm bảo, giữ nguyên semantics cũ)
	var course models.Course
	err = db.First(&course, "chapter_id = ?", chapter.ID).Error
	if err == nil {
		data.Course = &CourseInfo{ID: course.ID, Name: course.CourseName}

		var videos []models.Video
		if err := db.Where("course_id = ?", course.ID).Find(&videos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing the request : " + err.Error()})
			return
		}
		for _, v := range videos {
			data.Videos = append(data.Videos, VideoInfo{ID: v.ID, Title: v.VideoTitle, URL: v.VideoURL})
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing the request : " + err.Error()})
		return
	}

	// Quiz đầu tiên của chapter
	var quiz models.Quiz
	err = db.First(&quiz, "chapter_id = ?", chapter.ID).Error
	if err == nil {
		data.Quiz = &QuizInfo{ID: quiz.ID, Title: quiz.QuizTitle}

		var questions []models.Question
		if err := db.Where("quiz_id = ?", quiz.ID).Find(&questions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing the request : " + err.Error()})
			return
		}
		for _, q := range questions {
			data.Questions = append(data.Questions, QuestionInfo{
				ID:   q.ID,
				Text: q.QuestionText,
				Options: [4]OptionInfo{
					{Answer: q.Option1},
					{Answer: q.Option2},
					{Answer: q.Option3},
					{Answer: q.Option4},
				},
			})
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing the request : " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, data)
}

// ====== INPUT STRUCTS ======
type AnswerInput struct {
	QuestionID uuid.UUID `json:"questionId"`
	Answer     string    `json:"answer"`
}

type SubmitScoreInput struct {
	QuizID    uuid.UUID     `json:"quizId"`
	UserID    uuid.UUID     `json:"userId"`
	Questions []AnswerInput `json:"questions"`
}

// SubmitChapterScore chấm điểm bài nộp, ghi đè score của chapter
// và insert thêm một bản ghi UserQuiz
func SubmitChapterScore(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	chapterID, err := uuid.Parse(c.Param("chapterId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chapter not found"})
		return
	}

	var input SubmitScoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var questions []models.Question
	if err := db.Where("quiz_id = ?", input.QuizID).Find(&questions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing the request : " + err.Error()})
		return
	}
	if len(questions) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No questions found for the given QuizID"})
		return
	}

	// Câu trả lời trỏ tới question lạ thì bỏ qua, không tính đúng cũng không lỗi
	correctAnswers := 0.0
	for _, answer := range input.Questions {
		for _, question := range questions {
			if question.ID == answer.QuestionID {
				if question.CorrectOption == answer.Answer {
					correctAnswers++
				}
				break
			}
		}
	}

	// Mẫu số là tổng số câu của quiz, nộp thiếu thì điểm chỉ giảm chứ không vượt 100
	scorePercentage := (correctAnswers / float64(len(questions))) * 100.0

	var chapter models.Chapter
	err = db.First(&chapter, "id = ?", chapterID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chapter not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing the request : " + err.Error()})
		return
	}

	// Ghi đè, không cộng dồn
	if err := db.Model(&chapter).Update("score_chapter", scorePercentage).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing the request : " + err.Error()})
		return
	}

	// Luôn insert attempt, không cross-check chapter với quiz
	userQuiz := models.UserQuiz{
		UserID: input.UserID,
		QuizID: input.QuizID,
		Score:  scorePercentage,
	}
	if err := db.Create(&userQuiz).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing the request : " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"score": scorePercentage})
}

// UpdateUserTotalScore tính lại tổng điểm = sum score các chapter của user.
// Phải gọi tường minh sau khi nộp bài, không tự cascade.
func UpdateUserTotalScore(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No chapters found for the given user"})
		return
	}

	var userChapters []models.Chapter
	if err := db.Where("user_id = ?", userID).Find(&userChapters).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing the request : " + err.Error()})
		return
	}
	if len(userChapters) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No chapters found for the given user"})
		return
	}

	totalScore := 0.0
	for _, chapter := range userChapters {
		totalScore += chapter.ScoreChapter
	}

	var user models.User
	err = db.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing the request : " + err.Error()})
		return
	}

	if err := db.Model(&user).Update("total_score", totalScore).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing the request : " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalScore": totalScore})
}
