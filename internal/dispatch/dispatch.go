// Package dispatch runs one translation: load the settings file, pick the
// profile for the package being built, and collect its directives.
package dispatch

import (
	"errors"
	"fmt"

	"github.com/neelchauhan/torlink/internal/directive"
	"github.com/neelchauhan/torlink/internal/profile"
	"github.com/neelchauhan/torlink/internal/settings"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Dispatcher holds what a translation needs besides its inputs.
type Dispatcher struct {
	Fs       afero.Fs
	Registry *profile.Registry
	Log      logrus.FieldLogger
	// Version is the running tool version, checked against profile
	// Requires constraints.
	Version string
}

// Request names the inputs of one translation.
type Request struct {
	OutDir  string
	Package string
}

// Result is a completed translation.
type Result struct {
	SettingsPath string
	Profile      *profile.Profile
	Directives   []directive.Directive
}

// Run performs the translation. It returns no directives on error.
func (d *Dispatcher) Run(req Request) (*Result, error) {
	if req.OutDir == "" {
		return nil, errors.New("no output directory: set OUT_DIR or pass --out-dir")
	}
	if req.Package == "" {
		return nil, errors.New("no package name: set CARGO_PKG_NAME or pass --package")
	}

	s, err := settings.Load(d.Fs, req.OutDir)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	log := d.Log.WithFields(logrus.Fields{"settings": s.Path(), "package": req.Package})
	log.WithField("keys", s.Len()).Debug("Loaded settings")

	p, err := d.Registry.Resolve(req.Package, d.Version)
	if err != nil {
		return nil, err
	}
	log.WithField("source", p.Source).Debug("Resolved profile")

	em := directive.NewEmitter(s)
	if err := p.Apply(em); err != nil {
		return nil, err
	}

	log.WithField("count", em.Len()).Debug("Applied profile")
	directives := em.Directives()
	for _, dir := range directives {
		log.WithField("origin", dir.Origin).Trace(dir.String())
	}

	return &Result{
		SettingsPath: s.Path(),
		Profile:      p,
		Directives:   directives,
	}, nil
}
