// Expediter - Restaurant Operations Analytics and Reporting
// Copyright 2026 R. Galeano (rgaleano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rgaleano/expediter

package catalog

// All catalog SQL is written in the SQLite dialect used by the default
// embedded reporting store. Revenue and order aggregates only count orders
// with PaymentStatus = 'Paid'.

//nolint:gochecknoinits // the catalog is a fixed table built at process start
func init() {
	register(Definition{
		ID:          "top_menu_items_daily",
		Name:        "Top 5 Menu Items by Revenue (Daily)",
		Description: "Best selling menu items for a specific date",
		Params:      []string{"date"},
		Template: `
SELECT
    mi.Name AS MenuItem,
    COUNT(*) AS OrderCount,
    SUM(oi.Quantity) AS TotalQuantity,
    SUM(oi.Quantity * oi.PriceAtPurchase) AS Revenue
FROM ORDERITEMS oi
JOIN ORDERS o ON oi.OrderID = o.OrderID
JOIN MENUITEMS mi ON oi.MenuItemID = mi.MenuItemID
WHERE date(o.OrderDateTime) = :date
  AND o.PaymentStatus = 'Paid'
GROUP BY mi.Name
ORDER BY Revenue DESC
LIMIT 5`,
	})

	register(Definition{
		ID:          "menu_item_performance",
		Name:        "Menu Item Performance Analysis",
		Description: "Complete performance metrics for all menu items",
		Params:      []string{},
		Template: `
SELECT
    mi.MenuItemID,
    mi.Name,
    mc.Name AS Category,
    COUNT(oi.OrderItemID) AS TimesSold,
    SUM(oi.Quantity) AS TotalQuantity,
    SUM(oi.Quantity * oi.PriceAtPurchase) AS TotalRevenue,
    AVG(oi.PriceAtPurchase) AS AvgPrice
FROM ORDERITEMS oi
JOIN MENUITEMS mi ON oi.MenuItemID = mi.MenuItemID
JOIN MENUCATEGORIES mc ON mi.CategoryID = mc.CategoryID
JOIN ORDERS o ON oi.OrderID = o.OrderID
WHERE o.PaymentStatus = 'Paid'
GROUP BY mi.MenuItemID, mi.Name, mc.Name
ORDER BY TotalRevenue DESC`,
	})

	register(Definition{
		ID:          "customer_loyalty",
		Name:        "Customer Loyalty Analysis",
		Description: "Customer segmentation by order frequency and spending",
		Params:      []string{},
		Template: `
SELECT
    c.CustomerID,
    c.FirstName || ' ' || c.LastName AS CustomerName,
    c.Email,
    COUNT(o.OrderID) AS TotalOrders,
    SUM(o.TotalAmount) AS TotalSpent,
    AVG(o.TotalAmount) AS AvgOrderValue,
    MIN(o.OrderDateTime) AS FirstOrder,
    MAX(o.OrderDateTime) AS LastOrder,
    CAST(julianday(MAX(o.OrderDateTime)) - julianday(MIN(o.OrderDateTime)) AS INTEGER) AS CustomerLifespanDays,
    CASE
        WHEN COUNT(o.OrderID) >= 50 THEN 'VIP'
        WHEN COUNT(o.OrderID) >= 20 THEN 'Gold'
        WHEN COUNT(o.OrderID) >= 10 THEN 'Silver'
        ELSE 'Bronze'
    END AS LoyaltyTier
FROM CUSTOMERS c
JOIN ORDERS o ON c.CustomerID = o.CustomerID
WHERE o.PaymentStatus = 'Paid'
GROUP BY c.CustomerID, c.FirstName, c.LastName, c.Email
HAVING COUNT(o.OrderID) >= 5
ORDER BY TotalSpent DESC`,
	})

	register(Definition{
		ID:          "staff_performance",
		Name:        "Staff Performance Metrics",
		Description: "Order handling statistics per staff member",
		Params:      []string{},
		Template: `
SELECT
    s.StaffID,
    s.FirstName || ' ' || s.LastName AS StaffName,
    r.RoleName,
    COUNT(DISTINCT o.OrderID) AS OrdersHandled,
    SUM(o.TotalAmount) AS TotalSales,
    AVG(o.TotalAmount) AS AvgOrderValue,
    COUNT(DISTINCT date(o.OrderDateTime)) AS DaysWorked,
    CAST(COUNT(DISTINCT o.OrderID) AS REAL) / NULLIF(COUNT(DISTINCT date(o.OrderDateTime)), 0) AS AvgOrdersPerDay
FROM STAFF s
JOIN ROLES r ON s.RoleID = r.RoleID
LEFT JOIN ORDERS o ON s.StaffID = o.StaffID AND o.PaymentStatus = 'Paid'
GROUP BY s.StaffID, s.FirstName, s.LastName, r.RoleName
ORDER BY TotalSales DESC`,
	})

	register(Definition{
		ID:          "monthly_trends",
		Name:        "Monthly Revenue Trends",
		Description: "Revenue and order trends by month for a given year",
		Params:      []string{"year"},
		Template: `
SELECT
    CAST(strftime('%m', OrderDateTime) AS INTEGER) AS Month,
    CASE strftime('%m', OrderDateTime)
        WHEN '01' THEN 'January'
        WHEN '02' THEN 'February'
        WHEN '03' THEN 'March'
        WHEN '04' THEN 'April'
        WHEN '05' THEN 'May'
        WHEN '06' THEN 'June'
        WHEN '07' THEN 'July'
        WHEN '08' THEN 'August'
        WHEN '09' THEN 'September'
        WHEN '10' THEN 'October'
        WHEN '11' THEN 'November'
        ELSE 'December'
    END AS MonthName,
    COUNT(DISTINCT OrderID) AS TotalOrders,
    SUM(TotalAmount) AS Revenue,
    AVG(TotalAmount) AS AvgOrderValue,
    COUNT(DISTINCT CustomerID) AS UniqueCustomers,
    SUM(CASE WHEN OrderType = 'Dine-In' THEN 1 ELSE 0 END) AS DineInOrders,
    SUM(CASE WHEN OrderType = 'Takeout' THEN 1 ELSE 0 END) AS TakeoutOrders,
    SUM(CASE WHEN OrderType = 'Delivery' THEN 1 ELSE 0 END) AS DeliveryOrders
FROM ORDERS
WHERE strftime('%Y', OrderDateTime) = :year
  AND PaymentStatus = 'Paid'
GROUP BY strftime('%m', OrderDateTime)
ORDER BY Month`,
	})

	register(Definition{
		ID:          "profit_analysis",
		Name:        "Menu Item Profitability",
		Description: "Profit margins based on ingredient costs vs menu prices",
		Params:      []string{},
		Template: `
WITH ItemCosts AS (
    SELECT
        mi.MenuItemID,
        mi.Name,
        mi.Price,
        COALESCE(SUM(ri.QuantityRequired * soi.AvgCost), 0) AS EstimatedCost
    FROM MENUITEMS mi
    LEFT JOIN RECIPE_INGREDIENTS ri ON mi.MenuItemID = ri.MenuItemID
    LEFT JOIN (
        SELECT InventoryID, AVG(CostPerUnit) AS AvgCost
        FROM SUPPLYORDERITEMS
        GROUP BY InventoryID
    ) soi ON ri.InventoryID = soi.InventoryID
    GROUP BY mi.MenuItemID, mi.Name, mi.Price
),
ItemSales AS (
    SELECT
        mi.MenuItemID,
        COUNT(oi.OrderItemID) AS TimesSold,
        SUM(oi.Quantity) AS TotalQuantitySold,
        SUM(oi.Quantity * oi.PriceAtPurchase) AS TotalRevenue
    FROM MENUITEMS mi
    LEFT JOIN ORDERITEMS oi ON mi.MenuItemID = oi.MenuItemID
    LEFT JOIN ORDERS o ON oi.OrderID = o.OrderID AND o.PaymentStatus = 'Paid'
    GROUP BY mi.MenuItemID
)
SELECT
    ic.MenuItemID,
    ic.Name AS MenuItem,
    ic.Price AS CurrentPrice,
    ic.EstimatedCost,
    ic.Price - ic.EstimatedCost AS ProfitPerUnit,
    ROUND((ic.Price - ic.EstimatedCost) / NULLIF(ic.Price, 0) * 100, 2) AS ProfitMargin,
    COALESCE(s.TimesSold, 0) AS TimesSold,
    COALESCE(s.TotalQuantitySold, 0) AS TotalQuantitySold,
    COALESCE(s.TotalRevenue, 0) AS TotalRevenue,
    COALESCE(s.TotalRevenue - (s.TotalQuantitySold * ic.EstimatedCost), 0) AS TotalProfit
FROM ItemCosts ic
LEFT JOIN ItemSales s ON ic.MenuItemID = s.MenuItemID
ORDER BY TotalProfit DESC`,
	})

	register(Definition{
		ID:          "hourly_orders",
		Name:        "Hourly Order Distribution",
		Description: "Order volume and revenue by hour for a specific date",
		Params:      []string{"date"},
		Template: `
SELECT
    CAST(strftime('%H', OrderDateTime) AS INTEGER) AS Hour,
    COUNT(*) AS OrderCount,
    SUM(TotalAmount) AS Revenue
FROM ORDERS
WHERE date(OrderDateTime) = :date
  AND PaymentStatus = 'Paid'
GROUP BY strftime('%H', OrderDateTime)
ORDER BY Hour`,
	})

	register(Definition{
		ID:          "weekday_analysis",
		Name:        "Sales by Day of Week",
		Description: "Order and revenue patterns across weekdays",
		Params:      []string{},
		Template: `
SELECT
    CASE strftime('%w', OrderDateTime)
        WHEN '0' THEN 'Sunday'
        WHEN '1' THEN 'Monday'
        WHEN '2' THEN 'Tuesday'
        WHEN '3' THEN 'Wednesday'
        WHEN '4' THEN 'Thursday'
        WHEN '5' THEN 'Friday'
        ELSE 'Saturday'
    END AS DayOfWeek,
    CAST(strftime('%w', OrderDateTime) AS INTEGER) AS DayNumber,
    COUNT(OrderID) AS TotalOrders,
    SUM(TotalAmount) AS TotalRevenue,
    AVG(TotalAmount) AS AvgOrderValue
FROM ORDERS
WHERE PaymentStatus = 'Paid'
GROUP BY strftime('%w', OrderDateTime)
ORDER BY DayNumber`,
	})

	register(Definition{
		ID:          "table_utilization",
		Name:        "Table Utilization Analysis",
		Description: "Reservation patterns and capacity usage per table",
		Params:      []string{},
		Template: `
SELECT
    t.TableNumber,
    t.Capacity,
    COUNT(DISTINCT r.ReservationID) AS TotalReservations,
    AVG(CAST(r.NumGuests AS REAL)) AS AvgGuestsPerReservation,
    AVG(CAST(r.NumGuests AS REAL)) / t.Capacity * 100 AS UtilizationRate,
    COUNT(DISTINCT CASE WHEN r.Status = 'Completed' THEN r.ReservationID END) AS CompletedReservations,
    COUNT(DISTINCT CASE WHEN r.Status = 'No-Show' THEN r.ReservationID END) AS NoShows
FROM TABLES t
LEFT JOIN RESERVATIONS r ON t.TableID = r.TableID
GROUP BY t.TableNumber, t.Capacity`,
	})

	register(Definition{
		ID:          "customer_retention",
		Name:        "Customer Retention by Month",
		Description: "Share of each month's customers who return the following month",
		Params:      []string{},
		Template: `
WITH MonthlyCustomers AS (
    SELECT
        c.CustomerID,
        CAST(strftime('%Y', o.OrderDateTime) AS INTEGER) AS Year,
        CAST(strftime('%m', o.OrderDateTime) AS INTEGER) AS Month
    FROM CUSTOMERS c
    JOIN ORDERS o ON c.CustomerID = o.CustomerID
    WHERE o.PaymentStatus = 'Paid'
    GROUP BY c.CustomerID, strftime('%Y', o.OrderDateTime), strftime('%m', o.OrderDateTime)
)
SELECT
    mc1.Year,
    mc1.Month,
    COUNT(DISTINCT mc1.CustomerID) AS TotalCustomers,
    COUNT(DISTINCT mc2.CustomerID) AS ReturnedCustomers,
    CAST(COUNT(DISTINCT mc2.CustomerID) AS REAL) / NULLIF(COUNT(DISTINCT mc1.CustomerID), 0) * 100 AS RetentionRate
FROM MonthlyCustomers mc1
LEFT JOIN MonthlyCustomers mc2
    ON mc1.CustomerID = mc2.CustomerID
    AND (mc2.Year * 12 + mc2.Month) = (mc1.Year * 12 + mc1.Month + 1)
GROUP BY mc1.Year, mc1.Month
ORDER BY mc1.Year, mc1.Month`,
	})
}
