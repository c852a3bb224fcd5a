package zzd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ZedeN1/zzdPlot/pkg/zzd/scan"
)

// Extractor turns scanned records into typed events in a single forward
// pass, counting everything it drops. The zero value is ready to use.
type Extractor struct {
	set   EventSet
	diags Diagnostics
}

// Add classifies one record into convergence samples, a warning event,
// or a diagnostic count. Record-level failures never escalate.
func (e *Extractor) Add(rec scan.Record) {
	var err error
	switch rec.Kind {
	case scan.KindConvergence:
		err = e.addConvergence(rec)
	case scan.KindWarning:
		err = e.addWarning(rec)
	}
	switch {
	case err == nil:
	case isMalformed(err):
		e.diags.MalformedRecords++
	default:
		e.diags.DiscardedRecords++
	}
}

// Result returns everything extracted so far. Event order is scan
// order; run inference depends on that for fatal-event tie-breaking.
func (e *Extractor) Result() (EventSet, Diagnostics) {
	return e.set, e.diags
}

// addConvergence yields one DISCHARGE and one HEAD sample from a
// convergence record. A single bad field drops the whole record.
func (e *Extractor) addConvergence(rec scan.Record) error {
	t, err := parseField("time", rec.Time)
	if err != nil {
		return err
	}
	dq, err := parseField("max dq", rec.MaxDQ)
	if err != nil {
		return err
	}
	dh, err := parseField("max dh", rec.MaxDH)
	if err != nil {
		return err
	}
	e.set.Samples = append(e.set.Samples,
		ConvergenceSample{Time: t, Kind: Discharge, Value: dq, Node: rec.DQNode},
		ConvergenceSample{Time: t, Kind: Head, Value: dh, Node: rec.DHNode},
	)
	return nil
}

func (e *Extractor) addWarning(rec scan.Record) error {
	t, err := parseField("time", rec.Time)
	if err != nil {
		return err
	}
	code := strings.ToUpper(rec.Code)
	sev, ok := SeverityForCode(code)
	if !ok {
		return fmt.Errorf("%w: code %q", errDiscarded, rec.Code)
	}
	e.set.Warnings = append(e.set.Warnings, WarningEvent{
		Time:     t,
		Code:     code,
		Severity: sev,
		Label:    rec.Label,
	})
	return nil
}

func parseField(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrMalformedRecord, name, raw)
	}
	return v, nil
}

func isMalformed(err error) bool {
	return errors.Is(err, ErrMalformedRecord)
}
