package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// webhookNotificacoesTotal conta as notificações recebidas por processador e desfecho.
// Um "revisao_manual" ou "perfil_nao_encontrado" crescendo pede atenção de alguém.
var webhookNotificacoesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "webhook_notificacoes_total",
		Help: "Notificações de pagamento recebidas, por processador e resultado.",
	},
	[]string{"processador", "resultado"},
)
