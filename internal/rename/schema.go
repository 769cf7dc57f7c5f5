package rename

// Table is a parsed rename table.
type Table struct {
	// Version of the table format, currently always "1".
	Version string `yaml:"version"`
	// OnMissing decides what happens to document keys absent from Renames.
	OnMissing PolicyEnum `yaml:"on_missing"`
	// Renames maps old key names to new ones.
	Renames map[string]string `yaml:"renames"`
}
