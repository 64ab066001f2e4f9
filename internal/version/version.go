package version

// Version is the server release version. Override at build time with
// -ldflags "-X github.com/gnewsmcp/gnewsmcp/internal/version.Version=...".
var Version = "1.0.0"

// ServerName is the display name advertised to MCP clients.
const ServerName = "GNews MCP Server"
