// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SeedDemoData creates the restaurant schema and loads a deterministic
// demo dataset. It is used for local evaluation and by the test suite;
// running it against an existing database is an error.
//
// The dataset is constructed so every catalog query has meaningful rows:
// customers sit on both sides of each loyalty tier boundary, one menu item
// has never sold, one table has no reservations, and a handful of unpaid
// orders exist to make the paid-only filters observable.
func SeedDemoData(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := seedStatic(ctx, tx); err != nil {
		return err
	}
	if err := seedOrders(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}

var schema = []string{
	`CREATE TABLE ROLES (
		RoleID INTEGER PRIMARY KEY,
		RoleName TEXT NOT NULL
	)`,
	`CREATE TABLE STAFF (
		StaffID INTEGER PRIMARY KEY,
		FirstName TEXT NOT NULL,
		LastName TEXT NOT NULL,
		RoleID INTEGER NOT NULL REFERENCES ROLES(RoleID)
	)`,
	`CREATE TABLE MENUCATEGORIES (
		CategoryID INTEGER PRIMARY KEY,
		Name TEXT NOT NULL
	)`,
	`CREATE TABLE MENUITEMS (
		MenuItemID INTEGER PRIMARY KEY,
		Name TEXT NOT NULL,
		CategoryID INTEGER NOT NULL REFERENCES MENUCATEGORIES(CategoryID),
		Price REAL NOT NULL,
		Available INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE CUSTOMERS (
		CustomerID INTEGER PRIMARY KEY,
		FirstName TEXT NOT NULL,
		LastName TEXT NOT NULL,
		Email TEXT NOT NULL
	)`,
	`CREATE TABLE ORDERS (
		OrderID INTEGER PRIMARY KEY,
		CustomerID INTEGER REFERENCES CUSTOMERS(CustomerID),
		StaffID INTEGER REFERENCES STAFF(StaffID),
		OrderDateTime TEXT NOT NULL,
		OrderType TEXT NOT NULL,
		TotalAmount REAL NOT NULL,
		PaymentStatus TEXT NOT NULL
	)`,
	`CREATE TABLE ORDERITEMS (
		OrderItemID INTEGER PRIMARY KEY,
		OrderID INTEGER NOT NULL REFERENCES ORDERS(OrderID),
		MenuItemID INTEGER NOT NULL REFERENCES MENUITEMS(MenuItemID),
		Quantity INTEGER NOT NULL,
		PriceAtPurchase REAL NOT NULL
	)`,
	`CREATE TABLE TABLES (
		TableID INTEGER PRIMARY KEY,
		TableNumber INTEGER NOT NULL,
		Capacity INTEGER NOT NULL
	)`,
	`CREATE TABLE RESERVATIONS (
		ReservationID INTEGER PRIMARY KEY,
		TableID INTEGER NOT NULL REFERENCES TABLES(TableID),
		NumGuests INTEGER NOT NULL,
		Status TEXT NOT NULL
	)`,
	`CREATE TABLE INVENTORY (
		InventoryID INTEGER PRIMARY KEY,
		Name TEXT NOT NULL,
		Unit TEXT NOT NULL
	)`,
	`CREATE TABLE SUPPLYORDERITEMS (
		SupplyOrderItemID INTEGER PRIMARY KEY,
		InventoryID INTEGER NOT NULL REFERENCES INVENTORY(InventoryID),
		Quantity REAL NOT NULL,
		CostPerUnit REAL NOT NULL
	)`,
	`CREATE TABLE RECIPE_INGREDIENTS (
		RecipeIngredientID INTEGER PRIMARY KEY,
		MenuItemID INTEGER NOT NULL REFERENCES MENUITEMS(MenuItemID),
		InventoryID INTEGER NOT NULL REFERENCES INVENTORY(InventoryID),
		QuantityRequired REAL NOT NULL
	)`,
}

// menuPrices is indexed by MenuItemID and reused when pricing order items.
var menuPrices = map[int]float64{
	1: 8.50,
	2: 14.00,
	3: 32.00,
	4: 9.00,
	5: 3.50,
	6: 7.00,
	7: 4.50,
}

func seedStatic(ctx context.Context, tx *sql.Tx) error {
	inserts := []struct {
		stmt string
		rows [][]any
	}{
		{
			"INSERT INTO ROLES (RoleID, RoleName) VALUES (?, ?)",
			[][]any{
				{1, "Server"},
				{2, "Chef"},
				{3, "Manager"},
			},
		},
		{
			"INSERT INTO STAFF (StaffID, FirstName, LastName, RoleID) VALUES (?, ?, ?, ?)",
			[][]any{
				{1, "Alice", "Nguyen", 1},
				{2, "Bruno", "Costa", 1},
				{3, "Chie", "Tanaka", 2}, // no orders; exercises LEFT JOIN nulls
			},
		},
		{
			"INSERT INTO MENUCATEGORIES (CategoryID, Name) VALUES (?, ?)",
			[][]any{
				{1, "Appetizers"},
				{2, "Mains"},
				{3, "Desserts"},
				{4, "Drinks"},
			},
		},
		{
			"INSERT INTO MENUITEMS (MenuItemID, Name, CategoryID, Price, Available) VALUES (?, ?, ?, ?, ?)",
			[][]any{
				{1, "Bruschetta", 1, menuPrices[1], 1},
				{2, "Margherita Pizza", 2, menuPrices[2], 1},
				{3, "Ribeye Steak", 2, menuPrices[3], 1},
				{4, "Tiramisu", 3, menuPrices[4], 1},
				{5, "Espresso", 4, menuPrices[5], 1}, // has sales but no recipe rows
				{6, "Seasonal Soup", 1, menuPrices[6], 0},
				{7, "House Lemonade", 4, menuPrices[7], 1}, // never sold
			},
		},
		{
			"INSERT INTO CUSTOMERS (CustomerID, FirstName, LastName, Email) VALUES (?, ?, ?, ?)",
			[][]any{
				{1, "Dana", "Whitfield", "dana.whitfield@example.com"},
				{2, "Elio", "Marchetti", "elio.marchetti@example.com"},
				{3, "Femi", "Adeyemi", "femi.adeyemi@example.com"},
				{4, "Greta", "Lindqvist", "greta.lindqvist@example.com"},
				{5, "Hugo", "Fernandez", "hugo.fernandez@example.com"},
				{6, "Imani", "Okafor", "imani.okafor@example.com"},
				{7, "Jonas", "Keller", "jonas.keller@example.com"},
				{8, "Karin", "Sato", "karin.sato@example.com"},
				{9, "Luca", "Moretti", "luca.moretti@example.com"},
				{10, "Mara", "Petrov", "mara.petrov@example.com"},
			},
		},
		{
			"INSERT INTO TABLES (TableID, TableNumber, Capacity) VALUES (?, ?, ?)",
			[][]any{
				{1, 1, 4},
				{2, 2, 2},
				{3, 3, 6}, // no reservations
			},
		},
		{
			"INSERT INTO RESERVATIONS (ReservationID, TableID, NumGuests, Status) VALUES (?, ?, ?, ?)",
			[][]any{
				{1, 1, 4, "Completed"},
				{2, 1, 2, "No-Show"},
				{3, 1, 3, "Completed"},
				{4, 2, 2, "Completed"},
			},
		},
		{
			"INSERT INTO INVENTORY (InventoryID, Name, Unit) VALUES (?, ?, ?)",
			[][]any{
				{1, "Tomatoes", "kg"},
				{2, "Flour", "kg"},
				{3, "Beef", "kg"},
				{4, "Coffee Beans", "kg"},
				{5, "Lemons", "kg"},
			},
		},
		{
			"INSERT INTO SUPPLYORDERITEMS (SupplyOrderItemID, InventoryID, Quantity, CostPerUnit) VALUES (?, ?, ?, ?)",
			[][]any{
				{1, 1, 10.0, 2.00},
				{2, 1, 10.0, 4.00}, // tomato avg cost 3.00
				{3, 2, 25.0, 1.50},
				{4, 3, 5.0, 20.00},
				{5, 3, 5.0, 24.00}, // beef avg cost 22.00
				{6, 5, 8.0, 1.00},
			},
		},
		{
			"INSERT INTO RECIPE_INGREDIENTS (RecipeIngredientID, MenuItemID, InventoryID, QuantityRequired) VALUES (?, ?, ?, ?)",
			[][]any{
				{1, 1, 1, 0.2},  // bruschetta: tomatoes
				{2, 2, 2, 0.3},  // pizza: flour
				{3, 2, 1, 0.1},  // pizza: tomatoes
				{4, 3, 3, 0.35}, // steak: beef
				{5, 4, 2, 0.1},  // tiramisu: flour
				{6, 7, 5, 0.25}, // lemonade: lemons
			},
		},
	}

	for _, group := range inserts {
		for _, row := range group.rows {
			if _, err := tx.ExecContext(ctx, group.stmt, row...); err != nil {
				return fmt.Errorf("seed row %v: %w", row, err)
			}
		}
	}
	return nil
}

// paidOrderCounts places customers on both sides of every loyalty tier
// boundary: 50/49 around VIP, 20/19 around Gold, 10/9 around Silver, and
// 5/4 around the reporting floor.
var paidOrderCounts = map[int]int{
	1: 50,
	2: 49,
	3: 20,
	4: 19,
	5: 10,
	6: 9,
	7: 5,
	8: 4,
}

var orderTypes = [...]string{"Dine-In", "Takeout", "Delivery"}

func seedOrders(ctx context.Context, tx *sql.Tx) error {
	const insertOrder = `INSERT INTO ORDERS
		(OrderID, CustomerID, StaffID, OrderDateTime, OrderType, TotalAmount, PaymentStatus)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	const insertItem = `INSERT INTO ORDERITEMS
		(OrderItemID, OrderID, MenuItemID, Quantity, PriceAtPurchase)
		VALUES (?, ?, ?, ?, ?)`

	orderID := 0
	itemID := 0

	addOrder := func(customer, staff int, dateTime, orderType string, amount float64, status string, menuItem, qty int) error {
		orderID++
		if _, err := tx.ExecContext(ctx, insertOrder,
			orderID, customer, staff, dateTime, orderType, amount, status); err != nil {
			return fmt.Errorf("seed order %d: %w", orderID, err)
		}
		if menuItem == 0 {
			return nil
		}
		itemID++
		if _, err := tx.ExecContext(ctx, insertItem,
			itemID, orderID, menuItem, qty, menuPrices[menuItem]); err != nil {
			return fmt.Errorf("seed order item %d: %w", itemID, err)
		}
		return nil
	}

	// Tier customers: order j lands on 2024-01-05 + j days, giving every
	// customer a January order and only the two largest a February one.
	for customer := 1; customer <= 8; customer++ {
		for j := 0; j < paidOrderCounts[customer]; j++ {
			dt := fmt.Sprintf("%s %02d:%02d:00", dayOffset("2024-01-05", j), 10+j%12, (j*7)%60)
			amount := 20.0 + float64(j%5)*5.0
			staff := 1 + j%2
			item := []int{1, 2, 3, 4, 5}[j%5]
			if err := addOrder(customer, staff, dt, orderTypes[j%3], amount, "Paid", item, 1+j%2); err != nil {
				return err
			}
		}
	}

	// One unpaid order for the 49-order customer: if a paid-only filter
	// regresses, this tips them over the VIP boundary.
	if err := addOrder(2, 1, "2024-03-01 12:00:00", "Dine-In", 50.0, "Pending", 2, 1); err != nil {
		return err
	}
	if err := addOrder(1, 1, "2024-03-02 12:00:00", "Takeout", 50.0, "Cancelled", 3, 1); err != nil {
		return err
	}

	// Known hourly distribution on 2025-03-01: one order at 11, two at 12.
	hourly := []struct {
		dt     string
		amount float64
		item   int
	}{
		{"2025-03-01 11:15:00", 25.0, 2},
		{"2025-03-01 12:05:00", 30.0, 3},
		{"2025-03-01 12:45:00", 35.0, 2},
	}
	for _, h := range hourly {
		if err := addOrder(9, 1, h.dt, "Dine-In", h.amount, "Paid", h.item, 1); err != nil {
			return err
		}
	}

	// An adjacent-month returner outside the January cluster.
	if err := addOrder(10, 2, "2024-06-10 18:30:00", "Delivery", 28.0, "Paid", 4, 1); err != nil {
		return err
	}
	if err := addOrder(10, 2, "2024-07-11 19:00:00", "Delivery", 31.0, "Paid", 4, 1); err != nil {
		return err
	}

	return nil
}

// dayOffset returns the date offset days after start (YYYY-MM-DD).
func dayOffset(start string, days int) string {
	t, err := time.Parse("2006-01-02", start)
	if err != nil {
		panic(err)
	}
	return t.AddDate(0, 0, days).Format("2006-01-02")
}
