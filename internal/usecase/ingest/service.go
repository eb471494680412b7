// Package ingest is the data adapter: it converts retail-analytics business
// records into normalized search documents and feeds them to the engine.
// Pure transformation; no ranking or indexing logic lives here.
package ingest

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/retailpulse/searchd/internal/domain"
	"github.com/retailpulse/searchd/internal/domain/document"
	"github.com/retailpulse/searchd/internal/domain/document/meta"
	"github.com/retailpulse/searchd/internal/usecase/search"
)

// Engine is the ingestion surface of the search orchestrator.
type Engine interface {
	AddDocuments(docs []document.Document) search.IngestReport
	RebuildIndex(docs []document.Document) search.IngestReport
}

// Service converts business records and pushes them into the engine.
type Service struct {
	engine Engine
	logger *zap.Logger
}

// New creates the data adapter.
func New(engine Engine, lg *zap.Logger) *Service {
	if lg == nil {
		lg = zap.NewNop()
	}
	return &Service{engine: engine, logger: lg}
}

// Rebuild converts the full dataset and replaces the engine's index with it.
// Used at startup and on full reloads.
func (s *Service) Rebuild(ds Dataset) search.IngestReport {
	docs := s.convertAll(ds)
	report := s.engine.RebuildIndex(docs)
	s.logger.Info("search index rebuilt",
		zap.Int("indexed", report.Indexed),
		zap.Int("skipped", report.Skipped),
	)
	return report
}

// Add converts the dataset and appends it without disturbing existing
// entries — the real-time update path.
func (s *Service) Add(ds Dataset) search.IngestReport {
	return s.engine.AddDocuments(s.convertAll(ds))
}

// AddRecord converts one domain object of the given kind and appends it.
// Product and order are the supported real-time kinds.
func (s *Service) AddRecord(kind string, payload json.RawMessage) error {
	var doc document.Document
	var err error

	switch strings.ToLower(kind) {
	case "product":
		var p Product
		if err = json.Unmarshal(payload, &p); err == nil {
			doc, err = productDoc(p)
		}
	case "order":
		var o Order
		if err = json.Unmarshal(payload, &o); err == nil {
			doc, err = orderDoc(o)
		}
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownRecordKind, kind)
	}
	if err != nil {
		return fmt.Errorf("convert %s record: %w", kind, err)
	}

	report := s.engine.AddDocuments([]document.Document{doc})
	if report.Skipped > 0 {
		return domain.ErrMissingID
	}
	return nil
}

func (s *Service) convertAll(ds Dataset) []document.Document {
	var docs []document.Document
	appendDoc := func(d document.Document, err error, kind string) {
		if err != nil {
			s.logger.Warn("skipping unconvertible record",
				zap.String("kind", kind), zap.Error(err))
			return
		}
		docs = append(docs, d)
	}

	for _, m := range ds.Metrics {
		d, err := metricDoc(m)
		appendDoc(d, err, "metric")
	}
	for _, p := range ds.Products {
		d, err := productDoc(p)
		appendDoc(d, err, "product")
	}
	for _, o := range ds.Orders {
		d, err := orderDoc(o)
		appendDoc(d, err, "order")
	}
	for _, c := range ds.Customers {
		d, err := customerDoc(c)
		appendDoc(d, err, "customer")
	}
	for _, c := range ds.Connections {
		d, err := connectionDoc(c)
		appendDoc(d, err, "connection")
	}
	for _, c := range ds.Connectors {
		d, err := connectorDoc(c)
		appendDoc(d, err, "connector")
	}
	for _, f := range ds.Forecasts {
		d, err := forecastDoc(f)
		appendDoc(d, err, "forecast")
	}
	for _, i := range ds.Insights {
		d, err := insightDoc(i)
		appendDoc(d, err, "insight")
	}
	for _, c := range ds.Conversations {
		d, err := conversationDoc(c)
		appendDoc(d, err, "conversation")
	}
	for _, st := range ds.Settings {
		d, err := settingDoc(st)
		appendDoc(d, err, "setting")
	}
	for _, h := range ds.HelpArticles {
		d, err := helpArticleDoc(h)
		appendDoc(d, err, "help_article")
	}
	return docs
}

// recordID builds the namespaced document id. Records without a source id
// are unconvertible: the prefix alone would collide across records.
func recordID(prefix, id string) (string, error) {
	if id == "" {
		return "", domain.ErrMissingID
	}
	return prefix + id, nil
}

func metricDoc(m Metric) (document.Document, error) {
	id, err := recordID("metric-", m.ID)
	if err != nil {
		return document.Document{}, err
	}
	return document.New(
		id, m.Name, m.Description,
		fmt.Sprintf("%s %s for period %s", m.Name, m.Unit, m.Period),
		document.TypeDashboardMetric, "Dashboard", "/dashboard#"+m.ID,
		[]string{"metric", m.Period},
		meta.Map{
			"value":  meta.Number(m.Value),
			"unit":   meta.String(m.Unit),
			"period": meta.String(m.Period),
		},
		time.Time{},
	)
}

func productDoc(p Product) (document.Document, error) {
	id, err := recordID("product-", p.ID)
	if err != nil {
		return document.Document{}, err
	}
	tags := append([]string{"product"}, p.Tags...)
	return document.New(
		id, p.Name, p.Description, p.SKU,
		document.TypeProduct, "Products", "/products/"+p.ID,
		tags,
		meta.Map{
			"sku":   meta.String(p.SKU),
			"price": meta.Number(p.Price),
			"stock": meta.Number(float64(p.Stock)),
		},
		p.UpdatedAt,
	)
}

func orderDoc(o Order) (document.Document, error) {
	id, err := recordID("order-", o.ID)
	if err != nil {
		return document.Document{}, err
	}
	return document.New(
		id,
		"Order "+o.Number,
		fmt.Sprintf("%s — %d items, %s", o.CustomerName, o.ItemCount, o.Status),
		o.CustomerName,
		document.TypeOrder, "Orders", "/orders/"+o.ID,
		[]string{"order", o.Status},
		meta.Map{
			"status": meta.String(o.Status),
			"total":  meta.Number(o.Total),
			"items":  meta.Number(float64(o.ItemCount)),
		},
		o.PlacedAt,
	)
}

func customerDoc(c Customer) (document.Document, error) {
	id, err := recordID("customer-", c.ID)
	if err != nil {
		return document.Document{}, err
	}
	return document.New(
		id, c.Name, c.Email, c.Segment,
		document.TypeCustomer, "Customers", "/customers/"+c.ID,
		[]string{"customer", c.Segment},
		meta.Map{
			"email":          meta.String(c.Email),
			"segment":        meta.String(c.Segment),
			"lifetime_value": meta.Number(c.LifetimeValue),
		},
		time.Time{},
	)
}

func connectionDoc(c Connection) (document.Document, error) {
	id, err := recordID("connection-", c.ID)
	if err != nil {
		return document.Document{}, err
	}
	return document.New(
		id, c.Name,
		fmt.Sprintf("%s data source (%s)", c.Provider, c.Status),
		c.Provider,
		document.TypeDataSource, "Data Sources", "/data-sources/"+c.ID,
		[]string{"data-source", c.Provider, c.Status},
		meta.Map{
			"provider": meta.String(c.Provider),
			"status":   meta.String(c.Status),
		},
		c.LastSyncedAt,
	)
}

func connectorDoc(c Connector) (document.Document, error) {
	id, err := recordID("connector-", c.ID)
	if err != nil {
		return document.Document{}, err
	}
	return document.New(
		id, c.Name, c.Description, c.Provider,
		document.TypeConnector, "Connectors", "/connectors/"+c.ID,
		[]string{"connector", c.Provider},
		meta.Map{"provider": meta.String(c.Provider)},
		time.Time{},
	)
}

func forecastDoc(f Forecast) (document.Document, error) {
	id, err := recordID("forecast-", f.ID)
	if err != nil {
		return document.Document{}, err
	}
	return document.New(
		id, f.Name,
		fmt.Sprintf("%s forecast over %s", f.Metric, f.Horizon),
		f.Metric,
		document.TypeForecast, "Forecasting", "/forecasts/"+f.ID,
		[]string{"forecast", f.Metric},
		meta.Map{
			"metric":  meta.String(f.Metric),
			"horizon": meta.String(f.Horizon),
		},
		f.GeneratedAt,
	)
}

func insightDoc(i Insight) (document.Document, error) {
	id, err := recordID("insight-", i.ID)
	if err != nil {
		return document.Document{}, err
	}
	return document.New(
		id, i.Title, i.Summary, i.Summary,
		document.TypeInsight, "Insights", "/insights/"+i.ID,
		[]string{"insight", i.Severity},
		meta.Map{"severity": meta.String(i.Severity)},
		i.CreatedAt,
	)
}

func conversationDoc(c Conversation) (document.Document, error) {
	id, err := recordID("conversation-", c.ID)
	if err != nil {
		return document.Document{}, err
	}
	return document.New(
		id, c.Title, c.Snippet, c.Snippet,
		document.TypeConversation, "Assistant", "/assistant/"+c.ID,
		[]string{"conversation"},
		nil,
		c.StartedAt,
	)
}

func settingDoc(st Setting) (document.Document, error) {
	id, err := recordID("setting-", st.ID)
	if err != nil {
		return document.Document{}, err
	}
	return document.New(
		id, st.Name, st.Description, st.Section,
		document.TypeSetting, "Settings", "/settings/"+st.ID,
		[]string{"setting", st.Section},
		meta.Map{"section": meta.String(st.Section)},
		time.Time{},
	)
}

func helpArticleDoc(h HelpArticle) (document.Document, error) {
	id, err := recordID("help-", h.ID)
	if err != nil {
		return document.Document{}, err
	}
	return document.New(
		id, h.Title, h.Topic, h.Body,
		document.TypeHelpArticle, "Help", "/help/"+h.ID,
		[]string{"help", h.Topic},
		meta.Map{"topic": meta.String(h.Topic)},
		time.Time{},
	)
}
