package ingest

import "time"

// Business-record shapes as delivered by the analytics backend. The adapter
// only transforms them; where they come from is the caller's concern.

// Metric is one dashboard KPI.
type Metric struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
	Unit        string  `json:"unit"`
	Period      string  `json:"period"`
}

// Product is one catalog entry.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	SKU         string   `json:"sku"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Tags        []string `json:"tags"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Order is one customer order.
type Order struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	ItemCount    int       `json:"item_count"`
	PlacedAt     time.Time `json:"placed_at"`
}

// Customer is one buyer profile.
type Customer struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Segment       string  `json:"segment"`
	LifetimeValue float64 `json:"lifetime_value"`
}

// Connection is one configured data-source link.
type Connection struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Provider     string    `json:"provider"`
	Status       string    `json:"status"`
	LastSyncedAt time.Time `json:"last_synced_at"`
}

// Connector is one available store-connector integration.
type Connector struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Provider    string `json:"provider"`
	Description string `json:"description"`
}

// Forecast is one generated demand/revenue projection.
type Forecast struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Metric      string    `json:"metric"`
	Horizon     string    `json:"horizon"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Insight is one automated analytics finding.
type Insight struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

// Conversation is one assistant chat thread.
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Snippet   string    `json:"snippet"`
	StartedAt time.Time `json:"started_at"`
}

// Setting is one settings page entry.
type Setting struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Section     string `json:"section"`
}

// HelpArticle is one documentation page.
type HelpArticle struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Topic string `json:"topic"`
}

// Dataset bundles everything the backend hands over at startup.
type Dataset struct {
	Metrics       []Metric
	Products      []Product
	Orders        []Order
	Customers     []Customer
	Connections   []Connection
	Connectors    []Connector
	Forecasts     []Forecast
	Insights      []Insight
	Conversations []Conversation
	Settings      []Setting
	HelpArticles  []HelpArticle
}
