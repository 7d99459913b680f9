package settings

var (
	// VerboseLevel selects the log threshold: e(rror), w(arning),
	// i(nfo) or s(uppress).
	VerboseLevel string

	// Host is the Archiva base URL, protocol included.
	Host string

	// SetReferer makes every request carry "Referer: {host}".
	SetReferer bool

	// Username is the Archiva user.
	Username string

	// Password is the Archiva password.
	Password string

	// PasswordFromStdin reads the password from stdin if true.
	PasswordFromStdin bool

	// Output is the directory downloaded artifacts are written to.
	Output string

	// Execute holds a single instruction to run instead of entering
	// the interactive shell.
	Execute string
)
