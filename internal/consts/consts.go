package consts

const (
	ApplicationName    = "DogFinder API"
	ApplicationVersion = "1.0.0"
)

// Upload limits. The allow-list and ceiling are part of the API contract,
// not operator configuration.
const (
	MaxFileSize = 5 * 1024 * 1024 // 5 MiB per file
	MaxNameLen  = 100
)

// CloudinaryFolder is the namespace all remotely stored images live under.
const CloudinaryFolder = "dogfinder"

// AllowedExtensions maps lowercased file extensions accepted for upload.
var AllowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".heic": true,
	".heif": true,
}
