package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelReservationHandler "github.com/asidorov/MRS-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/asidorov/MRS-ReservationService/internal/api/handlers/create_reservation"
	createRoomHandler "github.com/asidorov/MRS-ReservationService/internal/api/handlers/create_room"
	createUserHandler "github.com/asidorov/MRS-ReservationService/internal/api/handlers/create_user"
	deleteRoomHandler "github.com/asidorov/MRS-ReservationService/internal/api/handlers/delete_room"
	deleteUserHandler "github.com/asidorov/MRS-ReservationService/internal/api/handlers/delete_user"
	getReservationHandler "github.com/asidorov/MRS-ReservationService/internal/api/handlers/get_reservation"
	getRoomHandler "github.com/asidorov/MRS-ReservationService/internal/api/handlers/get_room"
	getRoomReservationsHandler "github.com/asidorov/MRS-ReservationService/internal/api/handlers/get_room_reservations"
	getUserHandler "github.com/asidorov/MRS-ReservationService/internal/api/handlers/get_user"
	getUserReservationsHandler "github.com/asidorov/MRS-ReservationService/internal/api/handlers/get_user_reservations"
	listAvailableRoomsHandler "github.com/asidorov/MRS-ReservationService/internal/api/handlers/list_available_rooms"
	listReservationsHandler "github.com/asidorov/MRS-ReservationService/internal/api/handlers/list_reservations"
	listRoomsHandler "github.com/asidorov/MRS-ReservationService/internal/api/handlers/list_rooms"
	listUsersHandler "github.com/asidorov/MRS-ReservationService/internal/api/handlers/list_users"
	updateReservationHandler "github.com/asidorov/MRS-ReservationService/internal/api/handlers/update_reservation"
	updateRoomHandler "github.com/asidorov/MRS-ReservationService/internal/api/handlers/update_room"
	updateUserHandler "github.com/asidorov/MRS-ReservationService/internal/api/handlers/update_user"
	"github.com/asidorov/MRS-ReservationService/internal/api/middleware"
	"github.com/asidorov/MRS-ReservationService/internal/config"
	reservationRepo "github.com/asidorov/MRS-ReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/asidorov/MRS-ReservationService/internal/infra/storage/room"
	userRepo "github.com/asidorov/MRS-ReservationService/internal/infra/storage/user"
	"github.com/asidorov/MRS-ReservationService/internal/service/conflicts"
	reservationsService "github.com/asidorov/MRS-ReservationService/internal/service/reservations"
	roomsService "github.com/asidorov/MRS-ReservationService/internal/service/rooms"
	usersService "github.com/asidorov/MRS-ReservationService/internal/service/users"
	createReservationUC "github.com/asidorov/MRS-ReservationService/internal/usecase/create_reservation"
	listAvailableRoomsUC "github.com/asidorov/MRS-ReservationService/internal/usecase/list_available_rooms"
	updateReservationUC "github.com/asidorov/MRS-ReservationService/internal/usecase/update_reservation"
	"github.com/asidorov/MRS-ReservationService/pkg/dbmetrics"
	"github.com/asidorov/MRS-ReservationService/pkg/logger"
	"github.com/asidorov/MRS-ReservationService/pkg/metrics"
	"github.com/asidorov/MRS-ReservationService/pkg/simpletxmanager"
	"github.com/asidorov/MRS-ReservationService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting MRS-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		roomRepository        *roomRepo.Repository
		userRepository        *userRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		reservationRepository = reservationRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем проверку конфликтов бронирований
	conflictChecker := conflicts.NewChecker(reservationRepository, log)

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		roomRepository,
		userRepository,
		txMgr,
		log,
	)
	roomSvc := roomsService.NewService(roomRepository, log)
	userSvc := usersService.NewService(userRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		roomRepository,
		userRepository,
		conflictChecker,
		txMgr,
		log,
	)

	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		roomRepository,
		userRepository,
		conflictChecker,
		txMgr,
		log,
	)

	listAvailableRoomsUseCase := listAvailableRoomsUC.NewUseCase(
		roomRepository,
		conflictChecker,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	getRoomReservations := getRoomReservationsHandler.NewHandler(reservationSvc, log)
	listAvailableRooms := listAvailableRoomsHandler.NewHandler(listAvailableRoomsUseCase, log)

	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomSvc, log)

	createUser := createUserHandler.NewHandler(userSvc, log)
	getUser := getUserHandler.NewHandler(userSvc, log)
	listUsers := listUsersHandler.NewHandler(userSvc, log)
	updateUser := updateUserHandler.NewHandler(userSvc, log)
	deleteUser := deleteUserHandler.NewHandler(userSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	// Создание бронирования
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Список всех бронирований
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Изменение бронирования
	api.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)

	// Отмена бронирования
	api.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// --- Переговорные ---
	// Подбор свободных переговорных (регистрируется до /rooms/{roomId},
	// иначе "available" матчится как roomId)
	api.HandleFunc("/rooms/available", listAvailableRooms.Handle).Methods(http.MethodGet)

	// Справочник переговорных
	api.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", updateRoom.Handle).Methods(http.MethodPut)
	api.HandleFunc("/rooms/{roomId}", deleteRoom.Handle).Methods(http.MethodDelete)

	// Расписание переговорной на дату
	api.HandleFunc("/rooms/{roomId}/reservations", getRoomReservations.Handle).Methods(http.MethodGet)

	// --- Пользователи ---
	api.HandleFunc("/users", createUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}", getUser.Handle).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}", updateUser.Handle).Methods(http.MethodPut)
	api.HandleFunc("/users/{userId}", deleteUser.Handle).Methods(http.MethodDelete)

	// История бронирований пользователя
	api.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
