package controllers

import (
	"context"
	"net/http"
	"time"

	"swiftcart-backend/cache"
	"swiftcart-backend/charts"
	"swiftcart-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// CountSummary holds the dashboard's headline totals.
type CountSummary struct {
	Revenue float64 `json:"revenue"`
	User    int64   `json:"user"`
	Product int64   `json:"product"`
	Order   int     `json:"order"`
}

// ChangeSummary holds month-over-month percentage changes.
type ChangeSummary struct {
	Product int `json:"product"`
	User    int `json:"user"`
	Order   int `json:"order"`
}

// StatsCharts holds the six-month order series shown on the stats page.
type StatsCharts struct {
	OrderMonthsCount    []int     `json:"orderMonthsCount"`
	OrderMonthlyRevenue []float64 `json:"orderMonthlyRevenue"`
}

// UsersRatio is the male/female breakdown of registered users.
type UsersRatio struct {
	Male   int64 `json:"male"`
	Female int64 `json:"female"`
}

// LatestTransaction is one row of the recent-orders table.
type LatestTransaction struct {
	ID       primitive.ObjectID `json:"_id"`
	Quantity int                `json:"quantity"`
	Discount float64            `json:"discount"`
	Status   string             `json:"status"`
	Amount   float64            `json:"amount"`
}

// DashboardStats is the whole stats read model, cached as one unit under
// admin-stats.
type DashboardStats struct {
	Count               CountSummary        `json:"count"`
	Change              ChangeSummary       `json:"change"`
	Charts              StatsCharts         `json:"charts"`
	CategoryPercentages []map[string]int    `json:"categoryCountPercentage"`
	UsersRatio          UsersRatio          `json:"usersRatio"`
	Transactions        []LatestTransaction `json:"transactions"`
}

// OrderFulfillment is the order-status breakdown of the pie charts.
type OrderFulfillment struct {
	Processing int64 `json:"processing"`
	Shipped    int64 `json:"shipped"`
	Delivered  int64 `json:"delivered"`
}

// StockAvailability splits the catalog into in-stock and out-of-stock.
type StockAvailability struct {
	InStock    int64 `json:"productsInStock"`
	OutOfStock int64 `json:"productsOutOfStock"`
}

// RoleCounts is the admin/customer breakdown of the pie charts.
type RoleCounts struct {
	Admins    int64 `json:"admins"`
	Customers int64 `json:"customers"`
}

// PieCharts is the whole pie-chart read model, cached as one unit under
// admin-pie-charts.
type PieCharts struct {
	OrderFulfillment    OrderFulfillment           `json:"orderFulfillment"`
	ProductCategories   []map[string]int           `json:"productCategories"`
	StockAvailability   StockAvailability          `json:"stockAvailability"`
	RevenueDistribution charts.RevenueDistribution `json:"revenueDistribution"`
	Users               RoleCounts                 `json:"users"`
	UsersAgeGroup       charts.AgeGroups           `json:"usersAgeGroup"`
}

// BarCharts is the bar-chart read model: six-month product and user
// series, twelve-month order series. Cached under admin-bar-charts.
type BarCharts struct {
	Products []int `json:"products"`
	Users    []int `json:"users"`
	Orders   []int `json:"orders"`
}

// LineCharts is the line-chart read model: twelve-month series for
// products, users, discount and revenue. Cached under admin-line-charts.
type LineCharts struct {
	Users    []int     `json:"users"`
	Products []int     `json:"products"`
	Discount []float64 `json:"discount"`
	Revenue  []float64 `json:"revenue"`
}

// timedDoc decodes just the creation time of a document.
type timedDoc struct {
	CreatedAt time.Time `bson:"createdAt"`
}

// orderChartDoc decodes the order fields the chart series need.
type orderChartDoc struct {
	CreatedAt time.Time `bson:"createdAt"`
	Discount  float64   `bson:"discount"`
	Total     float64   `bson:"total"`
}

func createdBetween(from, to time.Time) bson.M {
	return bson.M{"createdAt": bson.M{"$gte": from, "$lte": to}}
}

// GetDashboardStats serves the admin-stats read model.
func (ctrl *Controller) GetDashboardStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats, ok := cache.GetJSON[DashboardStats](ctrl.Cache, cache.KeyAdminStats)
	if !ok {
		today := time.Now()
		thisMonthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		lastMonthStart := thisMonthStart.AddDate(0, -1, 0)
		lastMonthEnd := thisMonthStart.AddDate(0, 0, -1)
		sixMonthsAgo := today.AddDate(0, -6, 0)

		orders := ctrl.DB.Collection("orders")

		var (
			thisMonthProducts, lastMonthProducts int64
			thisMonthUsers, lastMonthUsers       int64
			thisMonthOrders, lastMonthOrders     int64
			productsCount, usersCount            int64
			maleUsersCount                       int64
			allOrders                            []models.Order
			sixMonthOrders                       []orderChartDoc
			categories                           []string
			latestOrders                         []models.Order
		)

		g, gctx := errgroup.WithContext(ctx)
		count := func(dst *int64, col string, filter bson.M) {
			g.Go(func() error {
				n, err := ctrl.DB.Collection(col).CountDocuments(gctx, filter)
				*dst = n
				return err
			})
		}
		count(&thisMonthProducts, "products", createdBetween(thisMonthStart, today))
		count(&lastMonthProducts, "products", createdBetween(lastMonthStart, lastMonthEnd))
		count(&thisMonthUsers, "users", createdBetween(thisMonthStart, today))
		count(&lastMonthUsers, "users", createdBetween(lastMonthStart, lastMonthEnd))
		count(&thisMonthOrders, "orders", createdBetween(thisMonthStart, today))
		count(&lastMonthOrders, "orders", createdBetween(lastMonthStart, lastMonthEnd))
		count(&productsCount, "products", bson.M{})
		count(&usersCount, "users", bson.M{})
		count(&maleUsersCount, "users", bson.M{"gender": "male"})
		g.Go(func() error {
			cursor, err := orders.Find(gctx, bson.M{}, options.Find().SetProjection(bson.M{"total": 1}))
			if err != nil {
				return err
			}
			return cursor.All(gctx, &allOrders)
		})
		g.Go(func() error {
			cursor, err := orders.Find(gctx, createdBetween(sixMonthsAgo, today),
				options.Find().SetProjection(bson.M{"createdAt": 1, "total": 1}))
			if err != nil {
				return err
			}
			return cursor.All(gctx, &sixMonthOrders)
		})
		g.Go(func() error {
			var err error
			categories, err = ctrl.distinctCategories(gctx)
			return err
		})
		g.Go(func() error {
			opts := options.Find().
				SetProjection(bson.M{"orderItems": 1, "total": 1, "discount": 1, "status": 1}).
				SetLimit(4)
			cursor, err := orders.Find(gctx, bson.M{}, opts)
			if err != nil {
				return err
			}
			return cursor.All(gctx, &latestOrders)
		})
		if err := g.Wait(); err != nil {
			fail(c, err.Error(), http.StatusInternalServerError)
			return
		}

		var revenue float64
		for _, order := range allOrders {
			revenue += order.Total
		}

		orderTimes := make([]time.Time, 0, len(sixMonthOrders))
		orderTotals := make([]charts.TimedValue, 0, len(sixMonthOrders))
		for _, o := range sixMonthOrders {
			orderTimes = append(orderTimes, o.CreatedAt)
			orderTotals = append(orderTotals, charts.TimedValue{CreatedAt: o.CreatedAt, Value: o.Total})
		}

		categoryPercentages, err := ctrl.categoryPercentages(ctx, categories, productsCount)
		if err != nil {
			fail(c, err.Error(), http.StatusInternalServerError)
			return
		}

		transactions := make([]LatestTransaction, 0, len(latestOrders))
		for _, order := range latestOrders {
			transactions = append(transactions, LatestTransaction{
				ID:       order.ID,
				Quantity: len(order.OrderItems),
				Discount: order.Discount,
				Status:   order.Status,
				Amount:   order.Total,
			})
		}

		stats = DashboardStats{
			Count: CountSummary{
				Revenue: revenue,
				User:    usersCount,
				Product: productsCount,
				Order:   len(allOrders),
			},
			Change: ChangeSummary{
				Product: charts.CalculatePercentage(int(thisMonthProducts), int(lastMonthProducts)),
				User:    charts.CalculatePercentage(int(thisMonthUsers), int(lastMonthUsers)),
				Order:   charts.CalculatePercentage(int(thisMonthOrders), int(lastMonthOrders)),
			},
			Charts: StatsCharts{
				OrderMonthsCount:    charts.MonthlyCounts(6, today, orderTimes),
				OrderMonthlyRevenue: charts.MonthlySums(6, today, orderTotals),
			},
			CategoryPercentages: categoryPercentages,
			UsersRatio:          UsersRatio{Male: maleUsersCount, Female: usersCount - maleUsersCount},
			Transactions:        transactions,
		}
		cache.SetJSON(ctrl.Cache, cache.KeyAdminStats, stats)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Dashboard Stats Fetched Successfully!",
		"stats":   stats,
	})
}

// GetPieCharts serves the admin-pie-charts read model.
func (ctrl *Controller) GetPieCharts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pie, ok := cache.GetJSON[PieCharts](ctrl.Cache, cache.KeyAdminPieCharts)
	if !ok {
		orders := ctrl.DB.Collection("orders")
		users := ctrl.DB.Collection("users")

		var (
			processing, shipped, delivered int64
			productsCount, outOfStock      int64
			adminUsers, customerUsers      int64
			categories                     []string
			allOrders                      []models.Order
			allUsers                       []models.User
		)

		g, gctx := errgroup.WithContext(ctx)
		count := func(dst *int64, col string, filter bson.M) {
			g.Go(func() error {
				n, err := ctrl.DB.Collection(col).CountDocuments(gctx, filter)
				*dst = n
				return err
			})
		}
		count(&processing, "orders", bson.M{"status": models.StatusProcessing})
		count(&shipped, "orders", bson.M{"status": models.StatusShipped})
		count(&delivered, "orders", bson.M{"status": models.StatusDelivered})
		count(&productsCount, "products", bson.M{})
		count(&outOfStock, "products", bson.M{"stock": 0})
		count(&adminUsers, "users", bson.M{"role": models.RoleAdmin})
		count(&customerUsers, "users", bson.M{"role": models.RoleUser})
		g.Go(func() error {
			var err error
			categories, err = ctrl.distinctCategories(gctx)
			return err
		})
		g.Go(func() error {
			opts := options.Find().SetProjection(bson.M{
				"total": 1, "discount": 1, "subtotal": 1, "tax": 1, "shippingCharges": 1,
			})
			cursor, err := orders.Find(gctx, bson.M{}, opts)
			if err != nil {
				return err
			}
			return cursor.All(gctx, &allOrders)
		})
		g.Go(func() error {
			cursor, err := users.Find(gctx, bson.M{}, options.Find().SetProjection(bson.M{"dob": 1}))
			if err != nil {
				return err
			}
			return cursor.All(gctx, &allUsers)
		})
		if err := g.Wait(); err != nil {
			fail(c, err.Error(), http.StatusInternalServerError)
			return
		}

		productCategories, err := ctrl.categoryPercentages(ctx, categories, productsCount)
		if err != nil {
			fail(c, err.Error(), http.StatusInternalServerError)
			return
		}

		var grossIncome, discount, productionCost, burnt float64
		for _, order := range allOrders {
			grossIncome += order.Total
			discount += order.Discount
			productionCost += order.ShippingCharges
			burnt += order.Tax
		}

		now := time.Now()
		ages := make([]int, 0, len(allUsers))
		for _, user := range allUsers {
			ages = append(ages, user.Age(now))
		}

		pie = PieCharts{
			OrderFulfillment: OrderFulfillment{
				Processing: processing,
				Shipped:    shipped,
				Delivered:  delivered,
			},
			ProductCategories: productCategories,
			StockAvailability: StockAvailability{
				InStock:    productsCount - outOfStock,
				OutOfStock: outOfStock,
			},
			RevenueDistribution: charts.DistributeRevenue(grossIncome, discount, productionCost, burnt),
			Users:               RoleCounts{Admins: adminUsers, Customers: customerUsers},
			UsersAgeGroup:       charts.GroupAges(ages),
		}
		cache.SetJSON(ctrl.Cache, cache.KeyAdminPieCharts, pie)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"charts":  pie,
	})
}

// GetBarCharts serves the admin-bar-charts read model.
func (ctrl *Controller) GetBarCharts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bar, ok := cache.GetJSON[BarCharts](ctrl.Cache, cache.KeyAdminBarCharts)
	if !ok {
		today := time.Now()
		sixMonthsAgo := today.AddDate(0, -6, 0)
		twelveMonthsAgo := today.AddDate(0, -12, 0)

		var productTimes, userTimes, orderTimes []time.Time
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			productTimes, err = ctrl.creationTimes(gctx, "products", sixMonthsAgo, today)
			return err
		})
		g.Go(func() error {
			var err error
			userTimes, err = ctrl.creationTimes(gctx, "users", sixMonthsAgo, today)
			return err
		})
		g.Go(func() error {
			var err error
			orderTimes, err = ctrl.creationTimes(gctx, "orders", twelveMonthsAgo, today)
			return err
		})
		if err := g.Wait(); err != nil {
			fail(c, err.Error(), http.StatusInternalServerError)
			return
		}

		bar = BarCharts{
			Products: charts.MonthlyCounts(6, today, productTimes),
			Users:    charts.MonthlyCounts(6, today, userTimes),
			Orders:   charts.MonthlyCounts(12, today, orderTimes),
		}
		cache.SetJSON(ctrl.Cache, cache.KeyAdminBarCharts, bar)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"charts":  bar,
	})
}

// GetLineCharts serves the admin-line-charts read model.
func (ctrl *Controller) GetLineCharts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	line, ok := cache.GetJSON[LineCharts](ctrl.Cache, cache.KeyAdminLineCharts)
	if !ok {
		today := time.Now()
		twelveMonthsAgo := today.AddDate(0, -12, 0)

		var (
			productTimes, userTimes []time.Time
			orderDocs               []orderChartDoc
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			productTimes, err = ctrl.creationTimes(gctx, "products", twelveMonthsAgo, today)
			return err
		})
		g.Go(func() error {
			var err error
			userTimes, err = ctrl.creationTimes(gctx, "users", twelveMonthsAgo, today)
			return err
		})
		g.Go(func() error {
			opts := options.Find().SetProjection(bson.M{"createdAt": 1, "discount": 1, "total": 1})
			cursor, err := ctrl.DB.Collection("orders").Find(gctx, createdBetween(twelveMonthsAgo, today), opts)
			if err != nil {
				return err
			}
			return cursor.All(gctx, &orderDocs)
		})
		if err := g.Wait(); err != nil {
			fail(c, err.Error(), http.StatusInternalServerError)
			return
		}

		discounts := make([]charts.TimedValue, 0, len(orderDocs))
		totals := make([]charts.TimedValue, 0, len(orderDocs))
		for _, o := range orderDocs {
			discounts = append(discounts, charts.TimedValue{CreatedAt: o.CreatedAt, Value: o.Discount})
			totals = append(totals, charts.TimedValue{CreatedAt: o.CreatedAt, Value: o.Total})
		}

		line = LineCharts{
			Users:    charts.MonthlyCounts(12, today, userTimes),
			Products: charts.MonthlyCounts(12, today, productTimes),
			Discount: charts.MonthlySums(12, today, discounts),
			Revenue:  charts.MonthlySums(12, today, totals),
		}
		cache.SetJSON(ctrl.Cache, cache.KeyAdminLineCharts, line)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"charts":  line,
	})
}

// creationTimes fetches the creation timestamps of every document in col
// created inside the [from, to] window.
func (ctrl *Controller) creationTimes(ctx context.Context, col string, from, to time.Time) ([]time.Time, error) {
	opts := options.Find().SetProjection(bson.M{"createdAt": 1})
	cursor, err := ctrl.DB.Collection(col).Find(ctx, createdBetween(from, to), opts)
	if err != nil {
		return nil, err
	}
	var docs []timedDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	times := make([]time.Time, 0, len(docs))
	for _, d := range docs {
		times = append(times, d.CreatedAt)
	}
	return times, nil
}

// categoryPercentages counts products per category concurrently and turns
// the counts into rounded percentages of the whole catalog, one
// single-key record per category in Distinct order.
func (ctrl *Controller) categoryPercentages(ctx context.Context, categories []string, total int64) ([]map[string]int, error) {
	counts := make([]int64, len(categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, category := range categories {
		i, category := i, category
		g.Go(func() error {
			n, err := ctrl.DB.Collection("products").CountDocuments(gctx, bson.M{"category": category})
			counts[i] = n
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	percentages := make([]map[string]int, 0, len(categories))
	for i, category := range categories {
		percentages = append(percentages, map[string]int{
			category: charts.RatioPercent(int(counts[i]), int(total)),
		})
	}
	return percentages, nil
}
