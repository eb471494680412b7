package document

// Type classifies a searchable record. The set is closed.
type Type string

const (
	TypeDashboardMetric Type = "dashboard_metric"
	TypeForecast        Type = "forecast"
	TypeDataSource      Type = "data_source"
	TypeConnector       Type = "connector"
	TypeConversation    Type = "conversation"
	TypeCustomer        Type = "customer"
	TypeProduct         Type = "product"
	TypeOrder           Type = "order"
	TypeInsight         Type = "insight"
	TypeSetting         Type = "setting"
	TypeHelpArticle     Type = "help_article"
)

var validTypes = map[Type]bool{
	TypeDashboardMetric: true,
	TypeForecast:        true,
	TypeDataSource:      true,
	TypeConnector:       true,
	TypeConversation:    true,
	TypeCustomer:        true,
	TypeProduct:         true,
	TypeOrder:           true,
	TypeInsight:         true,
	TypeSetting:         true,
	TypeHelpArticle:     true,
}

// IsValid reports whether the type is a member of the closed enumeration.
func (t Type) IsValid() bool { return validTypes[t] }

// String returns the wire form of the type.
func (t Type) String() string { return string(t) }
