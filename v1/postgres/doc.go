// Package postgres provides functionality for interacting with PostgreSQL databases.
//
// The postgres package offers a robust interface for working with PostgreSQL databases,
// built on top of GORM (gorm.io/gorm) and its postgres driver. It includes connection management,
// query execution, transaction handling, and migration tools.
//
// Core Features:
//   - Connection pooling and management
//   - Parameterized query execution
//   - Transaction support with automatic rollback on errors
//   - Schema migration tools
//   - Row scanning utilities
//   - Basic CRUD operations
//
// Basic Usage:
//
//	import "github.com/Aleph-Alpha/std/v1/postgres"
//
//	// Create a new database connection
//	db, err := postgres.NewPostgres(postgres.Config{
//		Connection: postgres.Connection{
//			Host:     "localhost",
//			Port:     "5432",
//			User:     "postgres",
//			Password: "password",
//			DbName:   "mydb",
//			SSLMode:  "disable",
//		},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer db.GracefulShutdown()
//
//	// Build and run a query
//	var users []User
//	err = db.Query(ctx).
//		Where("age > ?", 18).
//		Order("name").
//		Find(&users)
//
// Transaction Example:
//
//	err = db.Transaction(ctx, func(tx postgres.Client) error {
//		// Execute multiple statements in a transaction
//		if _, err := tx.Exec(ctx, "UPDATE accounts SET balance = balance - ? WHERE id = ?", amount, fromID); err != nil {
//			return err  // Transaction will be rolled back
//		}
//
//		if _, err := tx.Exec(ctx, "UPDATE accounts SET balance = balance + ? WHERE id = ?", amount, toID); err != nil {
//			return err  // Transaction will be rolled back
//		}
//
//		return nil  // Transaction will be committed
//	})
//
// Basic Operations:
//
//	// Create a record
//	user := User{Name: "John", Email: "john@example.com"}
//	err := db.Create(ctx, &user)
//
//	// Check if a record exists
//	var count int64
//	err = db.Count(ctx, &User{}, &count, "email = ?", "john@example.com")
//
//	// Get a single record
//	var found User
//	err = db.First(ctx, &found, "id = ?", user.ID)
//
// FX Module Integration:
//
// This package provides an fx module for easy integration:
//
//	app := fx.New(
//		postgres.FXModule,
//		fx.Provide(func() postgres.Config {
//			return loadPostgresConfig() // Your config loading function
//		}),
//		// ... other modules
//	)
//	app.Run()
//
// Error Handling:
//
// All methods in this package return GORM errors directly. This design provides:
//   - Consistency: All methods behave the same way
//   - Flexibility: Consumers can use errors.Is() with GORM error types
//   - Performance: No translation overhead unless needed
//   - Transparency: Preserves the full error chain from GORM
//
// Basic error handling with GORM errors:
//
//	var user User
//	err := db.First(ctx, &user, "email = ?", "user@example.com")
//	if errors.Is(err, gorm.ErrRecordNotFound) {
//	    // Handle not found
//	}
//
//	err = db.Query(ctx).Where("email = ?", "user@example.com").First(&user)
//	if errors.Is(err, gorm.ErrRecordNotFound) {
//	    // Handle not found
//	}
//
// For standardized error types, use TranslateError():
//
//	err := db.First(ctx, &user, conditions)
//	if err != nil {
//	    err = db.TranslateError(err)
//	    if errors.Is(err, postgres.ErrRecordNotFound) {
//	        // Handle not found with standardized error
//	    }
//	}
//
// Recommended pattern - create a helper function for common error checks:
//
//	func isRecordNotFound(err error) bool {
//	    return errors.Is(err, gorm.ErrRecordNotFound)
//	}
//
//	// Use consistently throughout your codebase
//	if isRecordNotFound(err) {
//	    // Handle not found
//	}
//
// Performance Considerations:
//
//   - Connection pooling is automatically handled to optimize performance
//   - Statements are not prepared or cached by this package (GORM's PrepareStmt option is not set)
//   - Consider using batch operations for multiple insertions
//   - Query timeouts are recommended for all database operations
//
// Thread Safety:
//
// All methods on the Client interface are safe for concurrent use by multiple
// goroutines.
package postgres
