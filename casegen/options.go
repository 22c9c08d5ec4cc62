package casegen

// General struct that stores global options from command line args
type General struct {
	Help    bool `long:"help" description:"show this help message"`
	Version bool `short:"v" long:"version" description:"print the tool version and exit"`
	Quiet   bool `short:"q" long:"quiet" description:"quieter output"`
}

// Randomizer struct that stores info on the random source from command line args
type Randomizer struct {
	Source string `long:"source" value-name:"<source>" description:"random source used to draw bits" choice:"pcg64" choice:"pcg32" choice:"faker" choice:"crypto" default:"pcg64"`
	Seed   uint64 `short:"s" long:"seed" value-name:"<seed>" description:"specific seed to use. Passing the same seed guarantees\n the same output for every run with the same input.\n Ignored by the crypto source"`
}

// Input struct that stores info on the text to randomize from command line args
type Input struct {
	File  string `short:"f" long:"file" value-name:"<file>" description:"read the lines to randomize from this file. Without\n --file or --fake, text is read from the arguments\n or from stdin"`
	Fake  int    `long:"fake" value-name:"<nb>" description:"randomize <nb> generated fake sentences"`
	Words int    `long:"words" value-name:"<nb>" description:"number of words in each fake sentence" default:"8"`
}

// Destination struct that stores info on where and how results are written
type Destination struct {
	Output string `short:"o" long:"output" value-name:"<output>" description:"where results should be written. Options are:\n - stdout (default)\n - filename" default:"stdout"`
	Table  bool   `long:"table" description:"if present, print input and output side by side\n in a table"`
	Raw    bool   `long:"raw" description:"if present, append a raw 32 bits value drawn\n from the same source to each line"`
	Repeat int    `short:"n" long:"repeat" value-name:"<nb>" description:"number of times each line is randomized" default:"1"`
}

// Options struct to store flags from CLI
type Options struct {
	Randomizer  `group:"randomizer"`
	Input       `group:"input"`
	Destination `group:"output"`
	General     `group:"general"`
}
