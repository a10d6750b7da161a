package models

// All lists the record types in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&Category{},
		&Product{},
		&Service{},
		&Support{},
		&Feedback{},
	}
}
