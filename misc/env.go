package misc

import "github.com/on-the-ground/oneliners_go/capability"

// IsRunningInTest reports whether the flags come from a test worker
// or an APP_ENV of "test".
func IsRunningInTest(flags capability.Flags) bool {
	return flags.TestWorkerID != "" || flags.AppEnv == "test"
}

func IsCI(flags capability.Flags) bool {
	return flags.CI
}

// IsBrowser reports a js/wasm build, the only target that runs in a browser.
func IsBrowser(p capability.Platform) bool {
	return p.GOOS == "js" && p.GOARCH == "wasm"
}

func IsNative(p capability.Platform) bool {
	return !IsBrowser(p)
}
