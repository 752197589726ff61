/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package classify

import (
	"github.com/telekom/execution-report/pkg/metrics"
	"github.com/telekom/execution-report/pkg/record"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// Module labels emitted by the default rules.
const (
	ModuleLogin     = "Login"
	ModuleWatchlist = "Watchlist"
	ModuleOrderbook = "Orderbook"
	ModuleDashboard = "Dashboard"
	ModuleOrderBook = "Order Book"
	ModulePosition  = "Position"
	ModuleHoldings  = "Holdings"
	ModuleFunds     = "Funds"
	ModuleProfile   = "Profile"
)

// Rule maps records satisfying Match to Module.
type Rule struct {
	Name   string
	Module string
	Match  func(record.Record) bool
}

// Classified is a record that matched a rule.
type Classified struct {
	Record record.Record
	Module string
}

// pageModules lists the page values recognized after the login rule, in
// evaluation order. "Order Window" and "Order Book" map to the deliberately
// distinct labels Orderbook and Order Book.
var pageModules = []struct {
	page   string
	module string
}{
	{"Watchlist", ModuleWatchlist},
	{"Order Window", ModuleOrderbook},
	{"Dashboard", ModuleDashboard},
	{"Order Book", ModuleOrderBook},
	{"Position", ModulePosition},
	{"Holdings", ModuleHoldings},
	{"Funds", ModuleFunds},
	{"Profile", ModuleProfile},
}

// DefaultRules returns a fresh copy of the standard rule list: any row
// carrying login credentials belongs to Login, otherwise the page decides.
func DefaultRules() []Rule {
	rules := []Rule{{
		Name:   "login-credentials",
		Module: ModuleLogin,
		Match: func(r record.Record) bool {
			return r.Has(record.FieldUsername) || r.Has(record.FieldOTP)
		},
	}}
	for _, pm := range pageModules {
		rules = append(rules, PageRule(pm.page, pm.module))
	}
	return rules
}

// PageRule matches records whose page field equals page exactly.
func PageRule(page, module string) Rule {
	return Rule{
		Name:   "page:" + page,
		Module: module,
		Match: func(r record.Record) bool {
			v, ok := r.Get(record.FieldPage)
			return ok && v == page
		},
	}
}

// Classifier evaluates rules in order; the first match wins.
type Classifier struct {
	rules []Rule
	log   *zap.SugaredLogger
}

// New creates a Classifier over rules. A nil logger disables logging.
func New(rules []Rule, log *zap.SugaredLogger) *Classifier {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Classifier{rules: slices.Clone(rules), log: log}
}

// Classify returns the module for rec, or false when no rule matches.
func (c *Classifier) Classify(rec record.Record) (string, bool) {
	i := slices.IndexFunc(c.rules, func(r Rule) bool { return r.Match(rec) })
	if i < 0 {
		return "", false
	}
	return c.rules[i].Module, true
}

// Apply classifies records in input order, dropping those without a module.
func (c *Classifier) Apply(records []record.Record) ([]Classified, int) {
	out := make([]Classified, 0, len(records))
	dropped := 0
	for i, rec := range records {
		module, ok := c.Classify(rec)
		if !ok {
			dropped++
			page, _ := rec.Get(record.FieldPage)
			c.log.Debugw("Dropping row without module", "row", i+1, "page", page)
			continue
		}
		out = append(out, Classified{Record: rec, Module: module})
		metrics.RecordsClassified.WithLabelValues(module).Inc()
	}
	metrics.RecordsDropped.Add(float64(dropped))
	c.log.Infow("Classified result rows", "classified", len(out), "dropped", dropped)
	return out, dropped
}
