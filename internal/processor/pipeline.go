// Package processor sequences the order pipeline: normalize and parse the
// message, aggregate and price the items, render the invoice document,
// record it, and hand it off for delivery. One invocation is synchronous
// and single-pass; every failure is terminal and typed.
package processor

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/rezonia/order-billing/internal/catalog"
	"github.com/rezonia/order-billing/internal/model"
	"github.com/rezonia/order-billing/internal/notify"
	"github.com/rezonia/order-billing/internal/parser"
	"github.com/rezonia/order-billing/internal/pricing"
	"github.com/rezonia/order-billing/internal/render"
	"github.com/rezonia/order-billing/internal/store"
)

// Pipeline wires the core components around a shared read-only catalog
type Pipeline struct {
	catalog  *catalog.Catalog
	resolver *parser.Resolver
	engine   *pricing.Engine
	renderer *render.Renderer
	store    store.Store
	sender   notify.Sender
	logger   zerolog.Logger
	now      func() time.Time
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithCatalog replaces the default built-in catalog
func WithCatalog(c *catalog.Catalog) Option {
	return func(p *Pipeline) { p.catalog = c }
}

// WithStore replaces the default in-memory store
func WithStore(s store.Store) Option {
	return func(p *Pipeline) { p.store = s }
}

// WithRenderer replaces the default renderer
func WithRenderer(r *render.Renderer) Option {
	return func(p *Pipeline) { p.renderer = r }
}

// WithSender replaces the default WhatsApp stub sender
func WithSender(s notify.Sender) Option {
	return func(p *Pipeline) { p.sender = s }
}

// WithLogger sets the pipeline logger
func WithLogger(l zerolog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// NewPipeline creates a pipeline with the given options
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		catalog: catalog.Default(),
		store:   store.NewMemory(),
		sender:  notify.NewWhatsAppSender(),
		logger:  zerolog.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.renderer == nil {
		p.renderer = render.NewRenderer("invoices")
	}
	p.resolver = parser.NewResolver(p.catalog)
	p.engine = pricing.NewEngine(p.catalog)
	return p
}

// Process runs one order message through the full pipeline. On success
// the invoice has been rendered, recorded, and queued for delivery; on
// failure a typed *model.OrderError describes the rejection and nothing
// has been persisted.
func (p *Pipeline) Process(msg *model.OrderMessage) (*model.InvoiceResult, error) {
	state := model.StateReceived
	log := p.logger.With().
		Str("customer", msg.CustomerName).
		Str("branch", msg.BranchID).
		Logger()
	log.Debug().Str("state", string(state)).Msg("order received")

	channel := msg.MessageType
	if channel == "" {
		channel = model.ChannelText
	}
	if channel != model.ChannelText && channel != model.ChannelVoice {
		return nil, model.NewOrderError(model.RejectionUnsupportedChannel,
			"message type must be 'text' or 'voice'", string(msg.MessageType))
	}

	content := msg.Content()
	if content == "" {
		return nil, model.NewOrderError(model.RejectionEmptyInput,
			"no message content found", "")
	}

	items := p.resolver.Parse(content, msg.SpecialNote)
	if len(items) == 0 {
		return nil, model.NewOrderError(model.RejectionNoItems,
			"no valid items found in order", content)
	}
	state = model.StateParsed
	log.Debug().Str("state", string(state)).Int("items", len(items)).Msg("order parsed")

	aggregated := pricing.Aggregate(items)
	lines, totals, err := p.engine.Price(aggregated, msg.PromoCode)
	if err != nil {
		if oe, ok := err.(*model.OrderError); ok && oe.Input == "" {
			oe.Input = content
		}
		return nil, err
	}
	state = model.StatePriced
	log.Debug().Str("state", string(state)).
		Str("grand_total", totals.GrandTotal.String()).Msg("order priced")

	invoiceNumber, err := p.store.NextInvoiceNumber()
	if err != nil {
		return nil, err
	}
	paymentLink := notify.PaymentLink(invoiceNumber, totals.GrandTotal)

	branch := msg.BranchID
	if branch == "" {
		branch = "main"
	}

	pdfPath, err := p.renderer.Invoice(invoiceNumber, branch, msg.CustomerName, lines, totals, paymentLink)
	if err != nil {
		return nil, err
	}
	state = model.StateRendered
	log.Debug().Str("state", string(state)).Str("pdf", pdfPath).Msg("invoice rendered")

	for _, item := range aggregated {
		if err := p.store.DeductInventory(item.Name, item.Qty); err != nil {
			return nil, err
		}
	}

	result := &model.InvoiceResult{
		InvoiceNumber: invoiceNumber,
		BranchID:      branch,
		CustomerName:  msg.CustomerName,
		Lines:         lines,
		Totals:        totals,
		PDFGenerated:  true,
		PDFPath:       pdfPath,
		PaymentLink:   paymentLink,
		CreatedAt:     p.now(),
	}
	if err := p.store.SaveInvoice(result); err != nil {
		return nil, err
	}
	state = model.StateRecorded
	log.Debug().Str("state", string(state)).Str("invoice", invoiceNumber).Msg("invoice recorded")

	if _, err := p.sender.SendInvoice(msg.CustomerPhone, pdfPath, invoiceNumber); err != nil {
		return nil, err
	}
	state = model.StateDelivered
	log.Info().Str("state", string(state)).Str("invoice", invoiceNumber).
		Str("grand_total", totals.GrandTotal.String()).Msg("order processed")

	return result, nil
}

// RevisionAck acknowledges a customer's correction request on an issued invoice
type RevisionAck struct {
	InvoiceNumber string `json:"invoice_number"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}

// RequestRevision records a manual-review note for an issued invoice
func (p *Pipeline) RequestRevision(invoiceNumber, customerMessage string) *RevisionAck {
	p.logger.Info().Str("invoice", invoiceNumber).Msg("revision requested")
	return &RevisionAck{
		InvoiceNumber: invoiceNumber,
		Status:        "revision_requested",
		Message:       "Revision noted for " + invoiceNumber + ": " + customerMessage,
	}
}

// DailySummary reports today's order volume via the store
func (p *Pipeline) DailySummary(branchID string) (store.Summary, error) {
	return p.store.DailySummary(branchID)
}

// Inventory reports tracked stock levels via the store
func (p *Pipeline) Inventory() (map[string]int, error) {
	return p.store.Inventory()
}
