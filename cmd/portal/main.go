package main

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/staff-portal-core/internal/config"
	"github.com/staff-portal-core/internal/dto"
	"github.com/staff-portal-core/internal/handler"
	"github.com/staff-portal-core/internal/router"
	"github.com/staff-portal-core/internal/service"
	"github.com/staff-portal-core/internal/session"
	"github.com/staff-portal-core/internal/storage"
	"github.com/staff-portal-core/internal/store"
	"github.com/staff-portal-core/internal/ui"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

func main() {
	// Инициализация логгера
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg := config.Load()

	// Подключение к хранилищу
	kv, err := openStorage(cfg.Storage)
	if err != nil {
		logger.Error("failed to open storage", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()

	// Загрузка графа данных
	st := store.New(kv, logger)
	if err := st.Load(ctx); err != nil {
		logger.Error("failed to load data", slog.Any("error", err))
		os.Exit(1)
	}

	// Восстановление сеанса по сохранённому маркеру
	sess := session.NewManager(st, kv)
	if acc, err := sess.Restore(ctx); err != nil {
		logger.Error("failed to restore session", slog.Any("error", err))
		os.Exit(1)
	} else if acc != nil {
		logger.Info("session restored", slog.String("email", acc.Email))
	}

	// Коллабораторы интерфейса
	console := ui.NewConsole(os.Stdin, os.Stdout)

	// Инициализация сервисов
	accountService := service.NewAccountService(st, sess)
	departmentService := service.NewDepartmentService(st)
	employeeService := service.NewEmployeeService(st)
	requestService := service.NewRequestService(st)

	// Настройка роутера
	rt := router.New(st, sess, console, console, logger)
	rerender := func() { rt.Navigate(rt.Token()) }

	// Инициализация хендлеров
	authHandler := handler.NewAuthHandler(accountService, sess, console, rt.Navigate, logger)
	accountHandler := handler.NewAccountHandler(accountService, sess, console, console, console, rerender, logger)
	departmentHandler := handler.NewDepartmentHandler(departmentService, console, console, console, rerender, logger)
	employeeHandler := handler.NewEmployeeHandler(employeeService, console, console, rerender, logger)
	requestHandler := handler.NewRequestHandler(requestService, sess, console, rerender, logger)

	registerRefresh(rt, accountHandler, departmentHandler, employeeHandler, requestHandler)

	// Стартовый переход
	rt.Navigate(router.DefaultToken)

	runShell(ctx, console, rt, authHandler, accountHandler, departmentHandler, employeeHandler, requestHandler)
}

// registerRefresh подключает колбэки обновления данных страниц-списков
func registerRefresh(
	rt *router.Router,
	accounts *handler.AccountHandler,
	departments *handler.DepartmentHandler,
	employees *handler.EmployeeHandler,
	requests *handler.RequestHandler,
) {
	rt.OnRefresh(router.PageAccounts, func() {
		for _, acc := range accounts.List() {
			fmt.Printf("  #%d %s %s <%s> %s verified=%v\n",
				acc.ID, acc.FirstName, acc.LastName, acc.Email, acc.Role, acc.Verified)
		}
	})
	rt.OnRefresh(router.PageDepartments, func() {
		for _, dept := range departments.List() {
			fmt.Printf("  #%d %s - %s\n", dept.ID, dept.Name, dept.Description)
		}
	})
	rt.OnRefresh(router.PageEmployees, func() {
		for _, emp := range employees.List() {
			fmt.Printf("  #%d %s <%s> %s dept=%s hired=%s\n",
				emp.ID, emp.EmployeeID, emp.Email, emp.Position, emp.DepartmentName, emp.HireDate)
		}
	})
	rt.OnRefresh(router.PageRequests, func() {
		for _, req := range requests.List() {
			items := make([]string, 0, len(req.Items))
			for _, item := range req.Items {
				items = append(items, fmt.Sprintf("%s (x%d)", item.Name, item.Qty))
			}
			fmt.Printf("  #%d %s [%s] %s by %s: %s\n",
				req.ID, req.Date, req.Status, req.Type, req.EmployeeEmail, strings.Join(items, ", "))
		}
	})
}

// runShell читает команды и транслирует их в операции хендлеров. Заменяет
// обработчики DOM-событий исходного приложения.
func runShell(
	ctx context.Context,
	console *ui.ConsoleUI,
	rt *router.Router,
	auth *handler.AuthHandler,
	accounts *handler.AccountHandler,
	departments *handler.DepartmentHandler,
	employees *handler.EmployeeHandler,
	requests *handler.RequestHandler,
) {
	for {
		line, ok := console.PromptText("portal")
		if !ok {
			return
		}
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "quit", "exit":
			return
		case "open":
			if len(args) == 2 {
				rt.Navigate(args[1])
			}
		case "register":
			if len(args) == 5 {
				auth.Register(ctx, &dto.RegisterForm{
					FirstName: args[1], LastName: args[2], Email: args[3], Password: args[4],
				})
			}
		case "verify":
			auth.Verify(ctx)
		case "login":
			if len(args) == 3 {
				auth.Login(ctx, &dto.LoginForm{Email: args[1], Password: args[2]})
			}
		case "logout":
			auth.Logout(ctx)
		case "dept-add":
			departments.QuickAdd(ctx)
		case "dept-del":
			if id, ok := parseID(args, 1); ok {
				departments.Delete(ctx, id)
			}
		case "acc-del":
			if id, ok := parseID(args, 1); ok {
				accounts.Delete(ctx, id)
			}
		case "acc-reset":
			if id, ok := parseID(args, 1); ok {
				accounts.ResetPassword(ctx, id)
			}
		case "emp-add":
			if len(args) >= 5 {
				deptID, _ := strconv.ParseInt(args[4], 10, 64)
				form := dto.EmployeeForm{
					EmployeeID: args[1], Email: args[2], Position: args[3], DeptID: deptID,
				}
				if len(args) == 6 {
					form.HireDate = args[5]
				}
				employees.Save(ctx, nil, &form)
			}
		case "emp-del":
			if id, ok := parseID(args, 1); ok {
				employees.Delete(ctx, id)
			}
		case "req-new":
			if len(args) >= 3 {
				form := dto.RequestForm{Type: args[1]}
				for _, spec := range args[2:] {
					name, qtyStr, found := strings.Cut(spec, "=")
					qty := 1
					if found {
						qty, _ = strconv.Atoi(qtyStr)
					}
					form.Items = append(form.Items, dto.RequestItemForm{Name: name, Qty: qty})
				}
				requests.Submit(ctx, &form)
			}
		case "approve":
			if id, ok := parseID(args, 1); ok {
				requests.Approve(ctx, id)
			}
		case "reject":
			if id, ok := parseID(args, 1); ok {
				requests.Reject(ctx, id)
			}
		default:
			fmt.Println("commands: open register verify login logout dept-add dept-del acc-del acc-reset emp-add emp-del req-new approve reject quit")
		}
	}
}

func parseID(args []string, pos int) (int64, bool) {
	if len(args) <= pos {
		return 0, false
	}
	id, err := strconv.ParseInt(args[pos], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// openStorage открывает key-value хранилище согласно конфигурации
func openStorage(cfg config.StorageConfig) (storage.KeyValueStore, error) {
	if cfg.Driver == "memory" {
		return storage.NewMemory(), nil
	}

	db, dialect, err := connectDB(cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if err := runMigrations(sqlDB, dialect); err != nil {
		return nil, err
	}

	return storage.NewGorm(db), nil
}

func connectDB(cfg config.StorageConfig) (*gorm.DB, string, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	switch cfg.Driver {
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.Path), gormCfg)
		return db, "sqlite3", err

	case "postgres":
		var db *gorm.DB
		var err error
		for i := 0; i < 30; i++ {
			db, err = gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
			if err == nil {
				sqlDB, _ := db.DB()
				if sqlDB.Ping() == nil {
					return db, "postgres", nil
				}
			}
			time.Sleep(time.Second)
		}
		return nil, "", fmt.Errorf("failed to connect to database after 30 attempts: %w", err)

	default:
		return nil, "", fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

func runMigrations(db *sql.DB, dialect string) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
