package client

import "path/filepath"

// InstallStatus indicates the presence of a client on the machine.
type InstallStatus string

const (
	// StatusInstalled indicates the client's config file exists.
	StatusInstalled InstallStatus = "installed"

	// StatusPartial indicates the client's config directory exists but the
	// config file itself has not been written yet.
	StatusPartial InstallStatus = "partial"

	// StatusNotInstalled indicates neither the config file nor its
	// directory exists.
	StatusNotInstalled InstallStatus = "not_installed"
)

// Detection reports where a client's config lives and whether the client
// appears to be present.
type Detection struct {
	// Descriptor identifies the client and its config location. The path
	// is always set, even when nothing exists on disk yet.
	Descriptor

	// Status indicates the client's presence on the machine.
	Status InstallStatus
}

// Detect probes a single client within env. Unknown ids and clients that
// cannot be resolved on env's platform return an error.
func Detect(id string, env Env) (Detection, error) {
	desc, err := Resolve(id, env)
	if err != nil {
		return Detection{}, err
	}

	status := StatusNotInstalled
	switch {
	case env.fileExists(desc.ConfigPath):
		status = StatusInstalled
	case env.dirExists(filepath.Dir(desc.ConfigPath)):
		status = StatusPartial
	}

	return Detection{Descriptor: desc, Status: status}, nil
}

// DetectAll probes every known client in registry order. Clients that do
// not resolve on env's platform are skipped.
func DetectAll(env Env) []Detection {
	results := make([]Detection, 0, len(IDs()))
	for _, id := range IDs() {
		det, err := Detect(id, env)
		if err != nil {
			continue
		}
		results = append(results, det)
	}
	return results
}

// DetectInstalled returns the clients whose config file already exists,
// in registry order.
func DetectInstalled(env Env) []Detection {
	all := DetectAll(env)
	installed := make([]Detection, 0, len(all))
	for _, det := range all {
		if det.Status == StatusInstalled {
			installed = append(installed, det)
		}
	}
	return installed
}
