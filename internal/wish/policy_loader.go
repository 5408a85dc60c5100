package wish

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/osse101/WishEval_Go/internal/domain"
	"github.com/osse101/WishEval_Go/internal/metrics"
)

// Document is the YAML policy file layout:
//
//	active: hopeful
//	variants:
//	  gentle:
//	    formula: linear
//	    base: 65
//	    span: 15
//	    override: hopeful
//	    fallback_score: 0.7
//	    fallback_probability: 65
//	    support_slots: 3
type Document struct {
	Active   string             `yaml:"active"`
	Variants map[string]Variant `yaml:"variants"`
}

// LoadDocument reads and parses a policy file.
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read policy file: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", domain.ErrInvalidPolicy, err)
	}
	return doc, nil
}

// LoadFile reads path and replaces the policy with its contents.
// On any error the current policy is kept.
func (p *Policy) LoadFile(path string) error {
	doc, err := LoadDocument(path)
	if err != nil {
		metrics.PolicyReloads.WithLabelValues(metrics.ResultError).Inc()
		return err
	}
	if err := p.Replace(doc); err != nil {
		metrics.PolicyReloads.WithLabelValues(metrics.ResultError).Inc()
		return err
	}
	metrics.PolicyReloads.WithLabelValues(metrics.ResultSuccess).Inc()
	return nil
}

// PolicyWatcher reloads a policy whenever its file changes on disk.
type PolicyWatcher struct {
	policy *Policy
	path   string
}

// NewPolicyWatcher creates a watcher for path.
func NewPolicyWatcher(policy *Policy, path string) *PolicyWatcher {
	return &PolicyWatcher{policy: policy, path: path}
}

// Run watches the file's directory until ctx is cancelled. The directory is
// watched rather than the file so editors that replace the file on save are
// still seen.
func (w *PolicyWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create policy watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("resolve policy path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch policy dir: %w", err)
	}
	slog.Info("Watching wish policy file", "path", abs)

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(policyReloadDebounce)
			} else {
				timer.Reset(policyReloadDebounce)
			}
			timerCh = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Policy watcher error", "error", err)

		case <-timerCh:
			timerCh = nil
			if err := w.policy.LoadFile(abs); err != nil {
				slog.Warn("Policy reload failed, keeping previous policy", "path", abs, "error", err)
				continue
			}
			slog.Info("Wish policy reloaded", "path", abs, "active", w.policy.Active().Name)
		}
	}
}
