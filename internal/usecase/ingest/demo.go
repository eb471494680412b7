package ingest

import "time"

// DemoDataset is the canned seed used when no upstream feed is configured,
// so a fresh instance answers queries immediately.
func DemoDataset() Dataset {
	now := time.Now().UTC()
	return Dataset{
		Metrics: []Metric{
			{ID: "m1", Name: "Total Revenue", Description: "Gross revenue across all channels", Value: 125640.50, Unit: "USD", Period: "30d"},
			{ID: "m2", Name: "Average Order Value", Description: "Mean order total", Value: 84.12, Unit: "USD", Period: "30d"},
			{ID: "m3", Name: "Conversion Rate", Description: "Sessions that ended in a purchase", Value: 3.4, Unit: "%", Period: "7d"},
			{ID: "m4", Name: "Inventory Turnover", Description: "How fast stock sells through", Value: 5.2, Unit: "x", Period: "90d"},
		},
		Products: []Product{
			{ID: "p1", Name: "Wireless Headphones", Description: "Over-ear Bluetooth headphones with noise cancelling", SKU: "WH-1000", Price: 199.99, Stock: 42, Tags: []string{"electronics", "audio"}, UpdatedAt: now.Add(-48 * time.Hour)},
			{ID: "p2", Name: "Cotton T-Shirt", Description: "Plain crew-neck tee in organic cotton", SKU: "TS-200", Price: 19.99, Stock: 310, Tags: []string{"apparel"}, UpdatedAt: now.Add(-24 * time.Hour)},
			{ID: "p3", Name: "Stainless Water Bottle", Description: "Insulated 750ml bottle", SKU: "WB-750", Price: 29.99, Stock: 128, Tags: []string{"outdoors"}, UpdatedAt: now.Add(-72 * time.Hour)},
		},
		Orders: []Order{
			{ID: "o1", Number: "10041", CustomerName: "Dana Reyes", Status: "shipped", Total: 219.98, ItemCount: 2, PlacedAt: now.Add(-30 * time.Hour)},
			{ID: "o2", Number: "10042", CustomerName: "Sam Okafor", Status: "processing", Total: 19.99, ItemCount: 1, PlacedAt: now.Add(-6 * time.Hour)},
		},
		Customers: []Customer{
			{ID: "c1", Name: "Dana Reyes", Email: "dana@example.com", Segment: "loyal", LifetimeValue: 1845.20},
			{ID: "c2", Name: "Sam Okafor", Email: "sam@example.com", Segment: "new", LifetimeValue: 19.99},
		},
		Connections: []Connection{
			{ID: "cn1", Name: "Shopify Store", Provider: "shopify", Status: "connected", LastSyncedAt: now.Add(-1 * time.Hour)},
			{ID: "cn2", Name: "Google Analytics", Provider: "google", Status: "syncing", LastSyncedAt: now.Add(-15 * time.Minute)},
		},
		Connectors: []Connector{
			{ID: "ct1", Name: "Shopify", Provider: "shopify", Description: "Import products, orders and customers from Shopify"},
			{ID: "ct2", Name: "WooCommerce", Provider: "woocommerce", Description: "Connect a WooCommerce store"},
		},
		Forecasts: []Forecast{
			{ID: "f1", Name: "Q4 Revenue Forecast", Metric: "revenue", Horizon: "90d", GeneratedAt: now.Add(-12 * time.Hour)},
			{ID: "f2", Name: "Holiday Demand Forecast", Metric: "units_sold", Horizon: "60d", GeneratedAt: now.Add(-36 * time.Hour)},
		},
		Insights: []Insight{
			{ID: "i1", Title: "Revenue spike on weekends", Summary: "Weekend revenue is 32% above the weekday baseline", Severity: "info", CreatedAt: now.Add(-20 * time.Hour)},
			{ID: "i2", Title: "Low stock warning", Summary: "Wireless Headphones will run out within 9 days at the current rate", Severity: "warning", CreatedAt: now.Add(-2 * time.Hour)},
		},
		Conversations: []Conversation{
			{ID: "cv1", Title: "Why did sales drop in March?", Snippet: "Sales dipped 8% in March, driven by the apparel category", StartedAt: now.Add(-96 * time.Hour)},
		},
		Settings: []Setting{
			{ID: "s1", Name: "Notification Preferences", Description: "Email and in-app alert settings", Section: "notifications"},
			{ID: "s2", Name: "Team Members", Description: "Invite and manage workspace users", Section: "workspace"},
		},
		HelpArticles: []HelpArticle{
			{ID: "h1", Title: "Connecting your first store", Body: "Step-by-step guide to linking Shopify or WooCommerce", Topic: "getting-started"},
			{ID: "h2", Title: "Understanding forecasts", Body: "How demand forecasts are generated and how to read confidence bands", Topic: "forecasting"},
		},
	}
}
