package main

var (
	gitSHA1   string = "unknown"
	gitDirty  string = "unknown"
	buildID   string = "unknown"
	buildDate string = "unknown"
)

func IntsetGitSHA1() string {
	return gitSHA1
}

func IntsetGitDirty() string {
	return gitDirty
}

func IntsetBuildIdRaw() string {
	return buildID + buildDate + gitSHA1 + gitDirty
}
