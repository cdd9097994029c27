package auth

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hrkit/hrkit/internal/domain"
)

func setupAuthDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(setupAuthDB(t))
	ctx := context.Background()

	user := &domain.User{Name: "Dana", Email: "dana@example.com", PasswordHash: "x", Roles: "user"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected ID assigned on create")
	}

	byID, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if byID.Email != "dana@example.com" {
		t.Errorf("GetByID().Email = %q, want dana@example.com", byID.Email)
	}

	byEmail, err := repo.GetByEmail(ctx, "dana@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("GetByEmail().ID = %d, want %d", byEmail.ID, user.ID)
	}
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository(setupAuthDB(t))
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, 42); !domain.IsNotFound(err) {
		t.Errorf("GetByID() error = %v, want NotFound", err)
	}
	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !domain.IsNotFound(err) {
		t.Errorf("GetByEmail() error = %v, want NotFound", err)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(setupAuthDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.User{Name: "A", Email: "dup@example.com"}); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	err := repo.Create(ctx, &domain.User{Name: "B", Email: "dup@example.com"})
	if !domain.IsAlreadyExists(err) {
		t.Errorf("second Create() error = %v, want AlreadyExists", err)
	}
}
