package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"course-service/internal/cache"
	"course-service/internal/config"
	"course-service/internal/db"
	"course-service/internal/event"
	"course-service/internal/handlers"
	"course-service/internal/middleware"
	"course-service/internal/repository"
	"course-service/internal/service"
	"course-service/pkg/discovery"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.ServiceConfig

	if err := db.InitMongo(cfg.MongoDB); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.DisconnectMongo()
	db.InitRedis(cfg.Redis)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" && cfg.RabbitMQ.Exchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Printf("Warning: failed to connect to RabbitMQ: %v", err)
		} else {
			defer publisher.Close()
		}
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	// Consul service discovery
	if registry, err := discovery.NewServiceRegistry(cfg); err != nil {
		log.Printf("Warning: service discovery init failed: %v", err)
	} else if err := registry.Register(); err != nil {
		log.Printf("Warning: service registration failed: %v", err)
	} else {
		defer registry.Deregister()
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Course Service is healthy")
	})

	database := db.Database
	detailCache := cache.New(db.RedisClient, cfg.Redis.DetailTTL)

	// Repositories
	courseRepo := repository.NewCourseRepository(database)
	sectionRepo := repository.NewSectionRepository(database)
	videoRepo := repository.NewVideoRepository(database)
	deadlineRepo := repository.NewDeadlineRepository(database)
	counterRepo := repository.NewCounterRepository(database)
	assignmentRepo := repository.NewAssignmentRepository(database)
	submissionRepo := repository.NewSubmissionRepository(database)
	progressRepo := repository.NewProgressRepository(database)
	enrollmentRepo := repository.NewEnrollmentRepository(database)
	userRepo := repository.NewUserRepository(database)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := videoRepo.CreateIndexes(indexCtx); err != nil {
		log.Printf("Warning: failed to create video indexes: %v", err)
	}
	if err := progressRepo.CreateIndexes(indexCtx); err != nil {
		log.Printf("Warning: failed to create progress indexes: %v", err)
	}
	indexCancel()

	// Services
	courseService := service.NewCourseService(courseRepo, sectionRepo, videoRepo, deadlineRepo, counterRepo, detailCache)
	contentService := service.NewContentService(courseRepo, sectionRepo, videoRepo, deadlineRepo, counterRepo, detailCache)
	assignmentService := service.NewAssignmentService(assignmentRepo, submissionRepo)
	progressService := service.NewProgressService(progressRepo, videoRepo)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, courseRepo)

	// Handlers
	courseHandler := handlers.NewCourseHandler(courseService, enrollmentService)
	teacherHandler := handlers.NewTeacherHandler(courseService, contentService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	videoHandler := handlers.NewVideoHandler(progressService)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService)

	publish := func(eventType string, payload any) {
		if publisher != nil {
			publisher.Publish(eventType, payload)
		}
	}

	// Public routes - catalog
	publicCourse := r.Group("/public/course")
	{
		publicCourse.GET("/", courseHandler.ListCourses)
		publicCourse.GET("/:id", courseHandler.GetCourseDetail)
		publicCourse.GET("/:id/enrollments/count", courseHandler.EnrollmentCount)
	}

	// Protected routes - learner
	protected := r.Group("/protected/course")
	protected.Use(middleware.RequireUser())
	{
		protected.POST("/enrollments", func(c *gin.Context) {
			enrollmentHandler.Enroll(c)
			publish(event.UserEnrolled, gin.H{"user_id": middleware.UserID(c)})
		})
		protected.GET("/enrollments", enrollmentHandler.ListMine)

		protected.GET("/assignments/course/:courseId", assignmentHandler.ListByCourse)
		protected.GET("/assignments/submissions", assignmentHandler.ListMySubmissions)
		protected.POST("/assignments/:assignmentId/submit", func(c *gin.Context) {
			assignmentHandler.Submit(c)
			publish(event.AssignmentSubmitted, gin.H{
				"assignment_id": c.Param("assignmentId"),
				"user_id":       middleware.UserID(c),
			})
		})

		protected.POST("/videos/:videoId/progress", func(c *gin.Context) {
			videoHandler.UpdateProgress(c)
			publish(event.ProgressUpdated, gin.H{
				"video_id": c.Param("videoId"),
				"user_id":  middleware.UserID(c),
			})
		})
		protected.GET("/videos/:videoId/progress", videoHandler.GetProgress)
		protected.GET("/videos/total-time", videoHandler.TotalTime)
		protected.GET("/videos/course/:courseId", videoHandler.CourseVideos)
	}

	// Protected routes - instructor
	teacher := r.Group("/protected/course/teacher")
	teacher.Use(middleware.RequireUser(), middleware.RequireTeacher(userRepo))
	{
		teacher.GET("/courses", teacherHandler.ListCourses)
		teacher.POST("/courses", func(c *gin.Context) {
			teacherHandler.CreateCourse(c)
			publish(event.CourseCreated, gin.H{"instructor": middleware.UserID(c)})
		})
		teacher.DELETE("/courses/:courseId", func(c *gin.Context) {
			teacherHandler.DeleteCourse(c)
			publish(event.CourseDeleted, gin.H{"course_id": c.Param("courseId")})
		})

		teacher.POST("/courses/:courseId/sections", func(c *gin.Context) {
			teacherHandler.CreateSection(c)
			publish(event.SectionCreated, gin.H{"course_id": c.Param("courseId")})
		})
		teacher.GET("/courses/:courseId/sections", teacherHandler.ListSections)

		teacher.POST("/courses/:courseId/videos", func(c *gin.Context) {
			teacherHandler.AddVideo(c)
			publish(event.VideoCreated, gin.H{"course_id": c.Param("courseId")})
		})
		teacher.GET("/courses/:courseId/videos", teacherHandler.ListVideos)

		teacher.POST("/courses/:courseId/deadlines", func(c *gin.Context) {
			teacherHandler.AddDeadline(c)
			publish(event.DeadlineCreated, gin.H{"course_id": c.Param("courseId")})
		})
		teacher.GET("/courses/:courseId/deadlines", teacherHandler.ListDeadlines)

		teacher.POST("/assignments", func(c *gin.Context) {
			assignmentHandler.CreateAssignment(c)
			publish(event.AssignmentCreated, gin.H{"instructor": middleware.UserID(c)})
		})
	}

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	log.Printf("Course service listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}
