package roster

// Version is the current release version of the roster module.
const Version = "0.1.0"
