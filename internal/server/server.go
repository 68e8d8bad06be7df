package server

// Данный сервер объединяет специфичные HTTP сервера, отвечающие за обработку конкретных сущностей
type Server struct {
	NumbersServer
}

func NewServer(
	numbersServer NumbersServer,
) Server {
	return Server{
		NumbersServer: numbersServer,
	}
}
