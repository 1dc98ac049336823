package pricenorm

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Store persists conversion rules and recorded offers in SQLite. The engine
// itself never touches it; callers load rules at startup and record offers
// explicitly.
type Store struct {
	db *sql.DB
}

func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS conversion_rules (
			from_unit TEXT,
			to_unit TEXT,
			factor REAL,
			dimension TEXT,
			PRIMARY KEY (from_unit, to_unit)
		);`,
		`CREATE TABLE IF NOT EXISTS offers (
			id TEXT PRIMARY KEY,
			item_id TEXT,
			amount REAL,
			amount_unit TEXT,
			total_price REAL,
			shipping_cost REAL,
			shipping_included INTEGER
		);`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// SaveRules replaces the persisted conversion table.
func (s *Store) SaveRules(rules []ConversionRule) error {
	if err := ValidateRules(rules); err != nil {
		return err
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM conversion_rules`); err != nil {
		tx.Rollback()
		return err
	}
	for _, r := range rules {
		_, err := tx.Exec(`INSERT INTO conversion_rules (from_unit, to_unit, factor, dimension) VALUES (?, ?, ?, ?)`,
			r.FromUnit, r.ToUnit, r.Factor, string(r.Dimension))
		if err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// LoadRules reads the persisted conversion table in insertion order.
func (s *Store) LoadRules() ([]ConversionRule, error) {
	rows, err := s.db.Query(`SELECT from_unit, to_unit, factor, dimension FROM conversion_rules ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []ConversionRule
	for rows.Next() {
		var r ConversionRule
		var dim string
		if err := rows.Scan(&r.FromUnit, &r.ToUnit, &r.Factor, &dim); err != nil {
			return nil, err
		}
		r.Dimension = Dimension(dim)
		rules = append(rules, r)
	}
	return rules, rows.Err()
}

// SaveOffer records one offer against an item so it can be re-normalized
// later when the conversion table changes.
func (s *Store) SaveOffer(id, itemID string, offer Offer) error {
	included := 0
	if offer.ShippingIncluded {
		included = 1
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO offers (id, item_id, amount, amount_unit, total_price, shipping_cost, shipping_included) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, itemID, offer.Amount, offer.AmountUnit, offer.TotalPrice, offer.ShippingCost, included)
	return err
}

// LoadOffersForItem returns the recorded offers for one item keyed by offer id.
func (s *Store) LoadOffersForItem(itemID string) (map[string]Offer, error) {
	rows, err := s.db.Query(`SELECT id, amount, amount_unit, total_price, shipping_cost, shipping_included FROM offers WHERE item_id = ?`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := make(map[string]Offer)
	for rows.Next() {
		var id string
		var included int
		var o Offer
		if err := rows.Scan(&id, &o.Amount, &o.AmountUnit, &o.TotalPrice, &o.ShippingCost, &included); err != nil {
			return nil, err
		}
		o.ShippingIncluded = included != 0
		offers[id] = o
	}
	return offers, rows.Err()
}
