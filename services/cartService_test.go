package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db, mock
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAddOrIncrementAnonymous(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCartService(db)

	if _, err := svc.AddOrIncrement(0, 1); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestAddOrIncrementUnknownProduct(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCartService(db)

	mock.ExpectQuery("SELECT (.+) FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}))

	if _, err := svc.AddOrIncrement(1, 42); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestAddOrIncrementUpsertsSingleRow(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCartService(db)

	mock.ExpectQuery("SELECT (.+) FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).
			AddRow(42, "Aspirin", "9.99"))

	// One statement carries both the insert and the increment; there is
	// no read-modify-write window.
	mock.ExpectExec("INSERT INTO `cart_items` (.+) ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectQuery("SELECT (.+) FROM `cart_items`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity"}).
			AddRow(1, 1, 42, 2))

	item, err := svc.AddOrIncrement(1, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", item.Quantity)
	}
	if item.Product.Name != "Aspirin" {
		t.Fatalf("expected resolved product, got %+v", item.Product)
	}
	expectationsMet(t, mock)
}

func TestRemoveMissingItemIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCartService(db)

	// Another user's item never matches the user_id filter, so the
	// delete affects zero rows.
	mock.ExpectExec("DELETE FROM `cart_items`").
		WithArgs(9, 1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := svc.Remove(1, 9); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestRemoveOwnedItem(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCartService(db)

	mock.ExpectExec("DELETE FROM `cart_items`").
		WithArgs(9, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.Remove(1, 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectationsMet(t, mock)
}

func TestTotalEmptyCartIsZero(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCartService(db)

	mock.ExpectQuery("SELECT (.+) FROM `cart_items`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity"}))

	total, err := svc.Total(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !total.Equal(decimal.Zero) {
		t.Fatalf("expected zero total, got %s", total)
	}
	expectationsMet(t, mock)
}

func TestTotalExactDecimalArithmetic(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCartService(db)

	mock.ExpectQuery("SELECT (.+) FROM `cart_items`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity"}).
			AddRow(1, 1, 101, 2).
			AddRow(2, 1, 102, 1))

	mock.ExpectQuery("SELECT (.+) FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).
			AddRow(101, "Aspirin", "9.99").
			AddRow(102, "Vitamin C", "5.00"))

	total, err := svc.Total(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !total.Equal(decimal.RequireFromString("24.98")) {
		t.Fatalf("expected exactly 24.98, got %s", total)
	}
	expectationsMet(t, mock)
}

func TestClearDeletesOnlyThatUsersItems(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewCartService(db)

	mock.ExpectExec("DELETE FROM `cart_items`").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := svc.Clear(7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectationsMet(t, mock)
}
