package keylock

var ReleaseScript = releaseScript
