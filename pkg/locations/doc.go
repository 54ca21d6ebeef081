// Package locations supplies the options for the widget's location dropdown.
// Sources are either fixed in memory or loaded from a YAML file; both return
// options sorted with locale-aware collation.
package locations
