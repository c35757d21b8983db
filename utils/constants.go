package utils

// RevokedTokenPrefix is the prefix used for Redis keys of revoked token hashes.
const RevokedTokenPrefix = "auth:revoked:"

// ChatTurnsPrefix is the prefix of Redis lists holding anonymous chat turns.
const ChatTurnsPrefix = "chat:turns:"
