package main

import (
	"os"
	"os/exec"
	"runtime"
)

// ValidTempo, ValidBeats and ValidSubdivision check the practical ranges
// the flags and key handlers enforce. The scheduler itself accepts more.
func ValidTempo(input float64) bool {
	return input >= MIN_TEMPO && input <= MAX_TEMPO
}

func ValidBeats(input int) bool {
	return input >= MIN_BEATS && input <= MAX_BEATS
}

func ValidSubdivision(input int) bool {
	return input >= MIN_SUBDIVISION && input <= MAX_SUBDIVISION
}

func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func ClampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func runCmd(name string, arg ...string) {
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	_ = cmd.Run()
}

func ClearTerminal() {
	switch runtime.GOOS {
	case "darwin":
		runCmd("clear")
	case "linux":
		runCmd("clear")
	case "windows":
		runCmd("cmd", "/c", "cls")
	default:
		runCmd("clear")
	}
}

func UserHomeDir() string {
	if runtime.GOOS == "windows" {
		home := os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
		if home == "" {
			home = os.Getenv("USERPROFILE")
		}
		return home + "\\"
	}
	return os.Getenv("HOME") + "/"
}
