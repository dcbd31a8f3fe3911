// Package phone exposes the template engine over HTTP.
package phone

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"phonefmt/internal/phonenumber"
	"phonefmt/platform/apperr"
	"phonefmt/platform/config"
	"phonefmt/platform/events"
	"phonefmt/platform/logger"
	phonelib "phonefmt/platform/phone"
	"phonefmt/platform/sanitize"
	"phonefmt/platform/validator"

	"github.com/google/uuid"
)

const msgNoMatch = "input does not match any phone number template"

// Service owns the configured formatter. Reads share it; a table
// replacement takes it exclusively.
type Service struct {
	mu        sync.RWMutex
	formatter *phonenumber.Formatter
	val       *validator.Validator
	bus       events.Bus
	log       *logger.Logger
}

// NewService builds the formatter from cfg, loading PHONE_TEMPLATES_FILE when set.
func NewService(cfg config.PhoneConfig, val *validator.Validator, bus events.Bus, log *logger.Logger) (*Service, error) {
	opts, err := phonenumber.ParseFormatterOptions(cfg.GetPhoneAllowedCountries(), cfg.GetPhoneAssumedCountry(), cfg.GetPhoneAllowedOptions())
	if err != nil {
		return nil, fmt.Errorf("phone config: %w", err)
	}
	if cfg.GetPhoneNonBreakingSpace() {
		opts = append(opts, phonenumber.WithFormatOptions(phonenumber.UseNonBreakingSpace))
	}

	source := "builtin"
	if path := cfg.GetPhoneTemplatesFile(); path != "" {
		table, err := phonenumber.LoadTable(path, val)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		opts = append(opts, phonenumber.WithTable(table))
		source = path
	}

	f := phonenumber.New(opts...)
	table := f.Table()
	log.TableRebuilt(source, len(table), table.TemplateCount())

	return &Service{formatter: f, val: val, bus: bus, log: log}, nil
}

// Parse interprets req.Input with the configured formatter, narrowed by the
// request's overrides.
func (s *Service) Parse(ctx context.Context, req ParseRequest) (NumberResponse, error) {
	overrides, err := phonenumber.ParseFormatterOptions(req.AllowedCountries, req.AssumedCountry, req.AllowedOptions)
	if err != nil {
		return NumberResponse{}, apperr.Wrap(apperr.KindValidation, err.Error(), err).WithOp("phone.Parse")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	f := s.formatter
	if len(overrides) > 0 {
		f = f.With(overrides...)
	}

	var n phonenumber.Number
	var cursor *int
	if req.Cursor != nil {
		var pos int
		n, pos, err = f.ParseCursor(req.Input, *req.Cursor)
		cursor = &pos
	} else {
		n, err = f.Parse(req.Input)
	}
	if err != nil {
		return NumberResponse{}, s.noMatch(ctx, "phone.Parse", err, len(sanitize.Digits(req.Input)))
	}

	s.log.WithContext(ctx).PhoneParsed(n.Country.Region(), len(n.Digits), n.Partial)
	return numberResponse(f, n, cursor), nil
}

// Format renders req's number for display.
func (s *Service) Format(ctx context.Context, req FormatRequest) (FormatResponse, error) {
	country, err := phonenumber.ParseCountry(req.Country)
	if err != nil {
		return FormatResponse{}, apperr.Wrap(apperr.KindValidation, err.Error(), err).WithOp("phone.Format")
	}
	mode, ok := phonenumber.ParseCountryCodeMode(req.Mode)
	if !ok {
		return FormatResponse{}, apperr.Validation("unknown mode " + req.Mode).WithOp("phone.Format")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	f := s.formatter
	if req.NonBreakingSpace {
		f = f.With(phonenumber.WithFormatOptions(phonenumber.UseNonBreakingSpace))
	}

	n := phonenumber.Number{Country: country, Digits: req.Digits, Partial: req.Partial}
	pos := len(n.Digits)
	if req.Cursor != nil {
		pos = min(*req.Cursor, len(n.Digits))
	}
	formatted, formattedCursor, err := f.FormatCursor(n, pos, mode)
	if err != nil {
		return FormatResponse{}, s.noMatch(ctx, "phone.Format", err, len(n.Digits))
	}

	resp := FormatResponse{Formatted: formatted}
	if req.Cursor != nil {
		resp.Cursor = &formattedCursor
	}
	return resp, nil
}

// Countries describes the configured countries and their templates.
func (s *Service) Countries() CountriesResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f := s.formatter
	table := f.Table()
	resp := CountriesResponse{
		AllowedOptions: f.AllowedOptions().Names(),
		Countries:      make([]CountryResponse, 0, len(table)),
	}
	for _, c := range f.AllowedCountries() {
		entry := table[c]
		cr := CountryResponse{
			Country:     c.Region(),
			Name:        c.String(),
			CallingCode: c.CallingCode(),
			TrunkPrefix: entry.TrunkPrefix,
			Assumed:     c == f.AssumedCountry(),
			Templates:   make([]TemplateResponse, 0, len(entry.Templates)),
		}
		for _, t := range entry.Templates {
			cr.Templates = append(cr.Templates, TemplateResponse{Pattern: t.Pattern, Options: t.Options.Names()})
		}
		resp.Countries = append(resp.Countries, cr)
	}
	return resp
}

// Normalize interprets req.Query both with the template engine and with
// libphonenumber and reports whether they reach the same E.164 value.
func (s *Service) Normalize(req NormalizeRequest) NormalizeResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f := s.formatter
	region := req.Region
	if region == "" {
		region = f.AssumedCountry().Region()
	}

	resp := NormalizeResponse{Input: req.Query, Region: region}
	resp.Reference, resp.ReferenceOK = phonelib.NormalizeE164(req.Query, region)

	n, err := f.Parse(req.Query)
	if err != nil {
		if cause, ok := phonenumber.CauseOf(err); ok {
			resp.NoMatchReason = cause.String()
		}
		return resp
	}
	number := numberResponse(f, n, nil)
	resp.Number = &number
	resp.Agrees = resp.ReferenceOK && !n.Partial && n.E164() == resp.Reference
	return resp
}

// ReplaceTable validates tf and swaps it in, recompiling every template.
// TemplatesReplaced is published once the new table is active.
func (s *Service) ReplaceTable(ctx context.Context, tf phonenumber.TableFile, replacedBy uuid.UUID) (TableReplacedResponse, error) {
	table, err := tf.Validate(s.val)
	if err != nil {
		var details any = err.Error()
		if fields := validator.FieldErrors(err); fields != nil {
			details = fields
		}
		return TableReplacedResponse{}, apperr.Wrap(apperr.KindValidation, "invalid template table", err).
			WithOp("phone.ReplaceTable").
			WithDetails(details)
	}

	s.mu.Lock()
	s.formatter.SetTable(table)
	active := s.formatter.Table()
	s.mu.Unlock()

	resp := TableReplacedResponse{Countries: len(active), Templates: active.TemplateCount()}
	s.log.WithContext(ctx).TableRebuilt("api", resp.Countries, resp.Templates)
	s.bus.Publish(ctx, TemplatesReplaced{
		BaseEvent:  events.NewBaseEvent(),
		ReplacedBy: replacedBy,
		Countries:  resp.Countries,
		Templates:  resp.Templates,
	})
	return resp, nil
}

// Table returns the active templates of the allowed countries.
func (s *Service) Table() phonenumber.TableFile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return phonenumber.NewTableFile(s.formatter.Table())
}

// Ready fails when no template is active.
func (s *Service) Ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.formatter.Table().TemplateCount() == 0 {
		return errors.New("no phone templates loaded")
	}
	return nil
}

func (s *Service) noMatch(ctx context.Context, op string, err error, digitCount int) error {
	var nr *phonenumber.NoResultError
	if !errors.As(err, &nr) {
		return apperr.Wrap(apperr.KindInternal, "phone number processing failed", err).WithOp(op)
	}
	details := NoMatchDetails{Cause: nr.Cause.String()}
	if nr.Country.Valid() {
		details.Country = nr.Country.Region()
	}
	s.log.WithContext(ctx).PhoneUnmatched(details.Cause, details.Country, digitCount)
	return apperr.Wrap(apperr.KindNoMatch, msgNoMatch, err).WithOp(op).WithDetails(details)
}

func numberResponse(f *phonenumber.Formatter, n phonenumber.Number, cursor *int) NumberResponse {
	// a number the formatter parsed always formats; partial ones may not
	formatted, _ := f.Format(n, phonenumber.IncludeCountryCode)
	return NumberResponse{
		Country:     n.Country.Region(),
		CountryName: n.Country.String(),
		CallingCode: n.Country.CallingCode(),
		Digits:      n.Digits,
		Partial:     n.Partial,
		E164:        n.E164(),
		Formatted:   formatted,
		Cursor:      cursor,
	}
}
