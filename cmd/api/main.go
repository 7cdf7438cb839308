package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/willjrcristo/atelie-inteligente/docs"
	"github.com/willjrcristo/atelie-inteligente/internal/config"
	httphandler "github.com/willjrcristo/atelie-inteligente/internal/handler/http"
	"github.com/willjrcristo/atelie-inteligente/internal/processor"
	"github.com/willjrcristo/atelie-inteligente/internal/repository"
	"github.com/willjrcristo/atelie-inteligente/internal/service"
)

// @title           API do Ateliê Inteligente
// @version         1.0
// @description     Marketplace de ceramistas: conciliação de pagamentos, assinaturas e catálogo.
//
// @contact.name   Will Cristo
// @contact.url    https://linkedin.com/in/willjrcristo
// @contact.email  willjrcristo@gmail.com
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Token de sessão no formato: Bearer <token>
func main() {
	// --- 1. CONFIGURAÇÃO DO LOGGER ---
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	slog.Info("🚀 Iniciando a API do Ateliê Inteligente...")

	// --- 2. CONFIGURAÇÃO ---
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuração inválida", "error", err)
		os.Exit(1)
	}

	// --- 3. CONEXÃO COM O BANCO DE DADOS ---
	db, err := initDB(cfg.DatabasePath)
	if err != nil {
		slog.Error("Erro ao inicializar o banco de dados", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("💾 Banco de dados pronto", "path", cfg.DatabasePath)

	// --- 4. INJEÇÃO DE DEPENDÊNCIAS (WIRING) ---
	// DB -> Repository -> Service -> Handler

	// Camada de Repositório
	perfilRepo := repository.NewSQLitePerfilRepository(db)
	assinaturaRepo := repository.NewSQLiteAssinaturaRepository(db)
	revisaoRepo := repository.NewSQLiteRevisaoRepository(db)
	pecaRepo := repository.NewSQLitePecaRepository(db)

	// Camada de Serviço
	guard := service.NewGuard(perfilRepo, assinaturaRepo)
	sessoes := service.NewSessoes(cfg.SessionSecret, cfg.SessionTTL)
	authService := service.NewAuthService(perfilRepo, assinaturaRepo, sessoes, guard, cfg.PlanoID)
	assinaturaService := service.NewAssinaturaService(assinaturaRepo)
	catalogoService := service.NewCatalogoService(perfilRepo, pecaRepo)

	recCfg := service.ReconciliadorConfig{
		PlanoID: cfg.PlanoID,
		Periodo: time.Duration(cfg.PeriodoAssinaturaDias) * 24 * time.Hour,
	}
	mercadoPago := processor.NewMercadoPago(cfg.MercadoPagoAPIURL, cfg.MercadoPagoAccessToken, cfg.ProcessadorTimeout)
	conciliadorMP := service.NewReconciliador(mercadoPago, perfilRepo, assinaturaRepo, revisaoRepo, recCfg)

	// Camada de Handler
	webhookHandler := httphandler.NewWebhookHandler(conciliadorMP)
	authHandler := httphandler.NewAuthHandler(authService)
	sessaoHandler := httphandler.NewSessaoHandler(guard)
	painelHandler := httphandler.NewPainelHandler(sessoes, guard, assinaturaService, catalogoService)
	catalogoHandler := httphandler.NewCatalogoHandler(catalogoService)

	// --- 5. CONFIGURAÇÃO DO ROTEADOR E ROTAS ---
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(prometheusMiddleware)

	// Rota de Health Check
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("API do Ateliê Inteligente está no ar! 🚀"))
	})
	r.Get("/health", healthHandler(db))
	r.Handle("/metrics", promhttp.Handler())

	// A URL será http://localhost:<porta>/swagger/index.html
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	slog.Info("📖 Documentação Swagger disponível", "url", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Port))

	// Webhooks dos processadores de pagamento
	r.Post("/webhooks/mercadopago", webhookHandler.HandleMercadoPago)
	r.Post("/api/webhooks/mercadopago", webhookHandler.HandleMercadoPago)
	if cfg.StripeHabilitada() {
		stripe := processor.NewStripe(cfg.StripeSecretKey, cfg.StripeWebhookSecret, cfg.StripeAPIURL, cfg.ProcessadorTimeout)
		conciliadorStripe := service.NewReconciliador(stripe, perfilRepo, assinaturaRepo, revisaoRepo, recCfg)
		r.Post("/webhooks/stripe", httphandler.NewStripeWebhookHandler(conciliadorStripe, stripe).HandleStripeWebhook)
		slog.Info("💳 Webhook da Stripe habilitado")
	}

	r.Mount("/auth", authHandler.Routes())
	r.With(httphandler.Autenticado(sessoes)).Get("/sessao/destino", sessaoHandler.Destino)
	r.Mount("/painel", painelHandler.Routes())

	// Rotas públicas
	r.Get("/catalogo", catalogoHandler.Catalogo)
	r.Get("/pecas/{slug}", catalogoHandler.BuscarPeca)
	r.Get("/ceramistas/{id}", catalogoHandler.PaginaCeramista)

	if cfg.AdminToken != "" {
		r.Mount("/admin", httphandler.NewAdminHandler(cfg.AdminToken, revisaoRepo).Routes())
		slog.Info("🛠️  Rotas de /admin registradas")
	}

	// --- 6. INICIALIZAÇÃO DO SERVIDOR HTTP ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("✅ Servidor pronto para receber requisições", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Erro ao iniciar o servidor", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Encerrando o servidor...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Erro ao encerrar o servidor", "error", err)
	}
}

// initDB abre o SQLite com chaves estrangeiras ligadas e aplica as migrações.
func initDB(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if err = repository.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			slog.Error("Health check falhou", "error", err)
			http.Error(w, "banco indisponível", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	}
}
