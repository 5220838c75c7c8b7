package filenames

// Config holds the file naming convention settings.
type Config struct {
	// Collections are the collection codes allowed as a filename prefix.
	Collections []string `mapstructure:"collections" default:"bcast,histmss,labor,litmss,lms,ntl,prange,scpa,univarch"`
	// AutonumberPrefix is the collection code used for newly assigned names.
	AutonumberPrefix string `mapstructure:"autonumber_prefix" default:"lms"`
	// AutonumberBase is the first autonumber handed out by a mapping run.
	AutonumberBase int `mapstructure:"autonumber_base" default:"1"`
}
