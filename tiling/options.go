package tiling

// TabIndicatorPlacement selects where the Arranger reserves room for a
// Tabbed container's tab bar.
type TabIndicatorPlacement string

const (
	// TabIndicatorOutside reserves the tab bar outside the container's own
	// rectangle, shrinking what the parent sees.
	TabIndicatorOutside TabIndicatorPlacement = "outside"
	// TabIndicatorWithinColumn reserves the tab bar inside the container's
	// rectangle; the parent's allotment is unaffected.
	TabIndicatorWithinColumn TabIndicatorPlacement = "within_column"
)

// Options is the configuration record spec.md §6 enumerates. It is an
// immutable snapshot passed into Arrange (Design Notes §9): the Tree holds
// only a pointer to the options in effect, never a mutable live reference,
// so an options change is always a deliberate SetOptions followed by a
// full re-arrange.
//
// Field names use toml tags so cmd/tiri can decode this directly with
// go-toml/v2; unknown keys in a TOML document are ignored by the decoder,
// matching "unknown fields are ignored" in spec.md §6.
type Options struct {
	InnerGap              int                   `toml:"inner_gap"`
	DefaultSplitRatio     float64               `toml:"default_split_ratio"`
	TabIndicatorPlacement TabIndicatorPlacement `toml:"tab_indicator_placement"`
	TabBarHeight          int                   `toml:"tab_bar_height"`
	TitleStripHeight      int                   `toml:"title_strip_height"`

	// MinFraction and PromoteOnMove are supplemented fields (SPEC_FULL.md
	// §9.1, §9 Open Questions) not named in spec.md §6's Options list;
	// they govern the interactive resize operation and the directional
	// move promotion policy respectively.
	MinFraction   float64 `toml:"min_fraction"`
	PromoteOnMove bool    `toml:"promote_on_move"`
}

// DefaultOptions returns the option set a freshly created Tree uses when
// none is supplied.
func DefaultOptions() *Options {
	return &Options{
		InnerGap:              0,
		DefaultSplitRatio:     0.5,
		TabIndicatorPlacement: TabIndicatorOutside,
		TabBarHeight:          1,
		TitleStripHeight:      1,
		MinFraction:           0.05,
		PromoteOnMove:         false,
	}
}
