package engine

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/physicslab/phyengine/errors"
)

// libPathEnv overrides library discovery with a full path to the built
// engine library. The name is shared with the hosting application.
const libPathEnv = "PHYSICSLAB_PHYENGINE_LIB"

func libraryNames() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"phyengine.dll"}
	case "darwin":
		return []string{"libphyengine.dylib"}
	default:
		return []string{"libphyengine.so"}
	}
}

func searchDirs() []string {
	var dirs []string
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		dirs = append(dirs, filepath.Join(dir, "native"), dir)
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, filepath.Join(wd, "native"), wd)
		// Dev-build locations of the engine checkout.
		for _, sub := range [][]string{
			{"third-parties", "Phy-Engine", "build"},
			{"third-parties", "Phy-Engine", "src", "build"},
			{"third-parties", "Phy-Engine", "src", "cmake-build-release"},
			{"third-parties", "Phy-Engine", "src", "cmake-build-debug"},
		} {
			dirs = append(dirs, filepath.Join(append([]string{wd}, sub...)...))
		}
	}
	return dirs
}

// Locate resolves the engine shared library path. Resolution order: the
// explicit path when non-empty, the PHYSICSLAB_PHYENGINE_LIB environment
// variable, then the platform default file names across the candidate
// directories. The returned error names every location searched.
func Locate(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.New(errors.PhaseResolve, errors.KindEngineNotAvailable).
				Detail("explicit library path %s is not readable", explicit).
				Cause(err).
				Build()
		}
		return explicit, nil
	}

	if env := os.Getenv(libPathEnv); env != "" {
		if _, err := os.Stat(env); err != nil {
			return "", errors.New(errors.PhaseResolve, errors.KindEngineNotAvailable).
				Detail("%s points to missing file %s", libPathEnv, env).
				Cause(err).
				Build()
		}
		return env, nil
	}

	var searched []string
	for _, dir := range searchDirs() {
		for _, name := range libraryNames() {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
			searched = append(searched, candidate)
		}
	}
	return "", errors.EngineNotAvailable(searched)
}
