package server

// Server groups the HTTP handlers by resource. Only shards exist for now.
type Server struct {
	ShardServer
}

func NewServer(
	shardServer ShardServer,
) Server {
	return Server{
		ShardServer: shardServer,
	}
}
