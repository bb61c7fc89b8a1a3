// file: internals/databases/migrate.go
package database

import (
	"log"

	feedbackmodel "belajarku_backend/internals/features/feedback/model"
	answermodel "belajarku_backend/internals/features/learning/answers/model"
	modulemodel "belajarku_backend/internals/features/learning/modules/model"
	progressmodel "belajarku_backend/internals/features/learning/progress/model"
	quizmodel "belajarku_backend/internals/features/learning/quizzes/model"
	authmodel "belajarku_backend/internals/features/users/auth/model"
	usermodel "belajarku_backend/internals/features/users/user/model"
)

// MigrateSchemas sinkronisasi skema lewat AutoMigrate. Dimatikan dengan
// DB_AUTOMIGRATE=false kalau skema dikelola di luar aplikasi.
func MigrateSchemas() {
	if getenv("DB_AUTOMIGRATE", "true") != "true" {
		log.Println("⏭️ AutoMigrate dilewati (DB_AUTOMIGRATE=false)")
		return
	}

	log.Println("🛠 Menjalankan AutoMigrate...")
	err := DB.AutoMigrate(
		&usermodel.UserModel{},
		&usermodel.UserProfileModel{},
		&authmodel.TokenBlacklist{},
		&modulemodel.LearningModuleModel{},
		&modulemodel.ModuleSectionModel{},
		&modulemodel.ModulePromptModel{},
		&modulemodel.ModuleVideoModel{},
		&modulemodel.ModuleWorksheetItemModel{},
		&modulemodel.ModuleQuizQuestionModel{},
		&answermodel.ModuleAnswerModel{},
		&quizmodel.ModuleQuizAnswerModel{},
		&progressmodel.UserProgressModel{},
		&feedbackmodel.FeedbackModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}
