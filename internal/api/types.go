package api

import "time"

// TokenResponse is the backend's login payload.
type TokenResponse struct {
	AccessToken  string  `json:"access_token"`
	TokenType    string  `json:"token_type"`
	ExpiresIn    int     `json:"expires_in"`
	UserRole     string  `json:"user_role"`
	UserLanguage *string `json:"user_language,omitempty"`
}

// User is the authenticated account.
type User struct {
	ID           int64         `json:"id"`
	Username     string        `json:"username"`
	Email        string        `json:"email"`
	Role         string        `json:"role"`
	IsActive     bool          `json:"is_active"`
	CreatedAt    time.Time     `json:"created_at"`
	MainLanguage *UserLanguage `json:"main_language,omitempty"`
}

// UserLanguage is the user's preferred translation language.
type UserLanguage struct {
	LanguageCode string `json:"language_code"`
	LanguageName string `json:"language_name"`
}

// PracticeWord is one word in a practice batch. Everything except the
// word itself and its translation is optional display data.
type PracticeWord struct {
	ID              int64      `json:"id"`
	KazakhWord      string     `json:"kazakh_word"`
	KazakhCyrillic  *string    `json:"kazakh_cyrillic,omitempty"`
	Translation     string     `json:"translation"`
	Pronunciation   *string    `json:"pronunciation,omitempty"`
	ImageURL        *string    `json:"image_url,omitempty"`
	DifficultyLevel int        `json:"difficulty_level"`
	TimesSeen       int        `json:"times_seen"`
	LastPracticed   *time.Time `json:"last_practiced,omitempty"`
	IsReview        bool       `json:"is_review"`
}

// PracticeRequest selects the word batch for a new session.
type PracticeRequest struct {
	SessionType       string `json:"session_type"`
	WordCount         int    `json:"word_count"`
	CategoryID        *int64 `json:"category_id,omitempty"`
	DifficultyLevelID *int64 `json:"difficulty_level_id,omitempty"`
	IncludeReview     bool   `json:"include_review"`
	LanguageCode      string `json:"language_code"`
}

// PracticeSession is the batch the backend issues at session start.
type PracticeSession struct {
	SessionID   int64          `json:"session_id"`
	Words       []PracticeWord `json:"words"`
	SessionType string         `json:"session_type"`
	TotalWords  int            `json:"total_words"`
}

// LearningSession is the backend's record of a finished session.
type LearningSession struct {
	ID               int64      `json:"id"`
	UserID           int64      `json:"user_id"`
	SessionType      string     `json:"session_type"`
	WordsStudied     int        `json:"words_studied"`
	CorrectAnswers   int        `json:"correct_answers"`
	IncorrectAnswers int        `json:"incorrect_answers"`
	DurationSeconds  *int       `json:"duration_seconds,omitempty"`
	StartedAt        time.Time  `json:"started_at"`
	FinishedAt       *time.Time `json:"finished_at,omitempty"`
	AccuracyRate     *float64   `json:"accuracy_rate,omitempty"`
}

// WordSummary is the catalog list shape.
type WordSummary struct {
	ID                 int64   `json:"id"`
	KazakhWord         string  `json:"kazakh_word"`
	KazakhCyrillic     *string `json:"kazakh_cyrillic,omitempty"`
	WordTypeName       string  `json:"word_type_name"`
	CategoryName       string  `json:"category_name"`
	DifficultyLevel    int     `json:"difficulty_level"`
	PrimaryTranslation *string `json:"primary_translation,omitempty"`
	PrimaryImage       *string `json:"primary_image,omitempty"`
}

// Category is one word category.
type Category struct {
	ID           int64  `json:"id"`
	CategoryName string `json:"category_name"`
	Description  string `json:"description,omitempty"`
	IsActive     bool   `json:"is_active"`
}

// DifficultyLevel is one catalog difficulty tier.
type DifficultyLevel struct {
	ID          int64  `json:"id"`
	LevelNumber int    `json:"level_number"`
	LevelName   string `json:"level_name"`
	IsActive    bool   `json:"is_active"`
}

// WordProgress is the user's learning state for one word, including the
// backend-computed spaced-repetition fields. The client only displays
// these; it never computes them.
type WordProgress struct {
	ID                 int64         `json:"id"`
	KazakhWordID       int64         `json:"kazakh_word_id"`
	Status             string        `json:"status"`
	TimesSeen          int           `json:"times_seen"`
	TimesCorrect       int           `json:"times_correct"`
	TimesIncorrect     int           `json:"times_incorrect"`
	DifficultyRating   *string       `json:"difficulty_rating,omitempty"`
	UserNotes          *string       `json:"user_notes,omitempty"`
	AddedAt            time.Time     `json:"added_at"`
	LastPracticedAt    *time.Time    `json:"last_practiced_at,omitempty"`
	NextReviewAt       *time.Time    `json:"next_review_at,omitempty"`
	RepetitionInterval int           `json:"repetition_interval"`
	EaseFactor         float64       `json:"ease_factor"`
	KazakhWord         *ProgressWord `json:"kazakh_word,omitempty"`
}

// ProgressWord is the nested word detail inside a progress record.
type ProgressWord struct {
	ID             int64                 `json:"id"`
	KazakhWord     string                `json:"kazakh_word"`
	KazakhCyrillic *string               `json:"kazakh_cyrillic,omitempty"`
	CategoryName   string                `json:"category_name"`
	Translations   []ProgressTranslation `json:"translations"`
}

// ProgressTranslation is one translation of a progress word.
type ProgressTranslation struct {
	Translation  string `json:"translation"`
	LanguageCode string `json:"language_code"`
}

// LearningStats is the aggregate statistics payload.
type LearningStats struct {
	TotalWords       int            `json:"total_words"`
	WordsByStatus    map[string]int `json:"words_by_status"`
	SessionsThisWeek int            `json:"sessions_this_week"`
	AccuracyRate     float64        `json:"accuracy_rate"`
	CurrentStreak    int            `json:"current_streak"`
	WordsDueReview   int            `json:"words_due_review"`
	TotalCorrect     int            `json:"total_correct"`
	TotalSeen        int            `json:"total_seen"`
}

// CategoryProgress is per-category completion.
type CategoryProgress struct {
	CategoryID     int64   `json:"category_id"`
	CategoryName   string  `json:"category_name"`
	WordsLearning  int     `json:"words_learning"`
	WordsLearned   int     `json:"words_learned"`
	CompletionRate float64 `json:"completion_rate"`
}

// Streak is the daily activity streak.
type Streak struct {
	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	StreakType       string     `json:"streak_type"`
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`
}

// Dashboard is the combined dashboard payload.
type Dashboard struct {
	Stats            LearningStats      `json:"stats"`
	Streak           *Streak            `json:"streak,omitempty"`
	RecentSessions   []LearningSession  `json:"recent_sessions"`
	WordsDueToday    int                `json:"words_due_today"`
	CategoryProgress []CategoryProgress `json:"category_progress"`
}

// ReviewSchedule summarizes upcoming spaced-repetition reviews.
type ReviewSchedule struct {
	DueNow         int        `json:"due_now"`
	DueToday       int        `json:"due_today"`
	DueThisWeek    int        `json:"due_this_week"`
	Overdue        int        `json:"overdue"`
	NextReviewDate *time.Time `json:"next_review_date,omitempty"`
}
