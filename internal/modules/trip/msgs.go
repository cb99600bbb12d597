// README: pt-BR conversational surface: prompts, warnings, and result cards.
package trip

import (
	"fmt"
	"strings"

	"viagem/internal/modules/history"
	"viagem/internal/modules/pricing"
	"viagem/internal/modules/reports"
)

const (
	msgNoSession    = "Envie /cotacao para calcular uma viagem ou /ajuda para ver os comandos."
	msgCancelled    = "Operação cancelada. Envie /cotacao quando quiser um novo orçamento. 👍"
	msgNothingToDo  = "Nenhuma operação em andamento."
	msgInternal     = "❌ Algo deu errado ao montar seu orçamento. Envie /cotacao para começar de novo."
	msgAskCategory  = "Qual categoria você prefere?"
	msgAskInputMode = "Como quer informar a viagem?"
	msgAskDistance  = "📏 Qual a distância em km? (ex: 12,5)"
	msgAskDuration  = "⏱️ Qual a duração em minutos? (ex: 25)"
	msgAskOrigin    = "📍 Informe o endereço de origem (ou compartilhe sua localização)."
	msgAskDest      = "🏁 Informe o endereço de destino."
	msgAskCondition = "Como está o trânsito/clima?"

	msgBadNumber      = "❌ Valor inválido. Digite um número (use vírgula ou ponto para decimais)."
	msgNegativeNumber = "❌ O valor não pode ser negativo. Tente novamente."
	msgNotPositive    = "❌ O valor precisa ser maior que zero. Tente novamente."
	msgBadInteger     = "❌ Digite um número inteiro (0 ou mais)."
	msgBadChoice      = "❌ Opção inválida. Escolha uma das opções do teclado."
	msgGeocodeRetry   = "⚠️ Serviço de endereços indisponível no momento. Tente novamente em instantes."

	msgAskFuelLiters    = "⛽ Quantos litros você abasteceu? (ex: 40)"
	msgAskFuelKm        = "🚗 Quantos km você rodou com esse tanque? (ex: 360)"
	msgAskSummaryRides  = "🧾 Quantas corridas você fez hoje?"
	msgAskSummaryEarned = "💵 Quanto você faturou hoje? (R$)"
	msgAskSummaryFuel   = "⛽ Quanto gastou de combustível hoje? (R$)"

	msgRotaUsage = "❌ Uso incorreto!\n\nUse: /rota Origem - Destino\n\nExemplo: /rota Rua Halfeld, Juiz de Fora - UFJF, Juiz de Fora"

	msgHistoryEmpty    = "Nenhum orçamento registrado ainda. Envie /cotacao para criar o primeiro."
	msgHistoryDisabled = "Histórico indisponível nesta instalação."
)

var categoryLabels = map[pricing.Category]string{
	pricing.CategoryStandard:  "Padrão",
	pricing.CategoryExecutive: "Executivo",
}

var conditionLabels = map[pricing.Condition]string{
	pricing.ConditionNormal:       "Normal",
	pricing.ConditionRainNight:    "Chuva/Noite",
	pricing.ConditionHeavyTraffic: "Trânsito intenso",
}

func categoryChoices() []Choice {
	return []Choice{
		{ID: string(pricing.CategoryStandard), Label: "🚗 Padrão"},
		{ID: string(pricing.CategoryExecutive), Label: "🚘 Executivo"},
	}
}

func inputModeChoices() []Choice {
	return []Choice{
		{ID: "manual", Label: "🔢 Informar distância e tempo"},
		{ID: "address", Label: "🗺️ Calcular por endereços"},
	}
}

func conditionChoices() []Choice {
	return []Choice{
		{ID: string(pricing.ConditionNormal), Label: "☀️ Normal"},
		{ID: string(pricing.ConditionRainNight), Label: "🌧️ Chuva/Noite"},
		{ID: string(pricing.ConditionHeavyTraffic), Label: "🚦 Trânsito intenso"},
	}
}

func welcomeCard(name string) string {
	if name == "" {
		name = "Passageiro"
	}
	return fmt.Sprintf(`👋 Bem-vindo à CALCULADORA DE VIAGENS! 👋

Olá %s!

🎯 Comandos:

/cotacao — orçamento passo a passo
/rota Origem - Destino — orçamento direto
/combustivel — consumo do veículo
/resumo — fechamento do dia
/historico — últimos orçamentos
/cancelar — cancela a operação atual
/ajuda — esta lista

📍 Você também pode compartilhar sua localização para um orçamento até o ponto de referência.`, name)
}

func helpCard() string {
	return `📚 AJUDA — Comandos disponíveis

/cotacao — inicia um orçamento guiado (categoria, distância ou endereços, condição)
/rota Origem - Destino — orçamento em uma mensagem
    Exemplo: /rota Rua Halfeld, Juiz de Fora - UFJF, Juiz de Fora
/combustivel — calcula km/l e l/100km
/resumo — lucro do dia, lucro por corrida e margem
/historico — seus últimos orçamentos
/cancelar — cancela a operação em andamento

💡 Dicas:
   • Seja específico com os endereços (rua, número, cidade)
   • Use "-" para separar origem e destino no /rota
   • Números aceitam vírgula ou ponto (12,5 ou 12.5)`
}

func quoteCard(q pricing.Quote, originLabel, destLabel string) string {
	var b strings.Builder
	b.WriteString("✨ ORÇAMENTO ✨\n\n")
	if originLabel != "" {
		fmt.Fprintf(&b, "📍 De: %s\n\n", originLabel)
	}
	if destLabel != "" {
		fmt.Fprintf(&b, "🏁 Para: %s\n\n", destLabel)
	}
	fmt.Fprintf(&b, "📏 Distância: %.2f km\n", q.DistanceKm)
	fmt.Fprintf(&b, "⏱️ Tempo estimado: %d minutos\n", int(q.DurationMin))
	fmt.Fprintf(&b, "🚘 Categoria: %s\n", categoryLabels[q.Category])
	fmt.Fprintf(&b, "🌦️ Condição: %s\n\n", conditionLabels[q.Condition])
	b.WriteString("💰 Detalhamento:\n")
	fmt.Fprintf(&b, "   • Taxa fixa: R$ %.2f\n", q.BaseFare)
	fmt.Fprintf(&b, "   • Distância: R$ %.2f\n", q.DistanceAmount)
	fmt.Fprintf(&b, "   • Tempo: R$ %.2f\n", q.TimeAmount)
	if q.Multiplier != 1.0 {
		fmt.Fprintf(&b, "   • Ajuste da condição: x%.1f\n", q.Multiplier)
	}
	fmt.Fprintf(&b, "\n💳 Valor Sugerido: R$ %.2f\n", q.Total)
	b.WriteString("\n💳 Aceitamos Pix e Cartão\n\nObrigado por usar nosso serviço! 🙏")
	return b.String()
}

func fuelCard(rep reports.FuelReport) string {
	return fmt.Sprintf(`⛽ CONSUMO DO VEÍCULO

🚗 Rodados: %.1f km
⛽ Abastecidos: %.1f litros

📊 Eficiência:
   • %.2f km/l
   • %.2f l/100km`, rep.Km, rep.Liters, rep.KmPerLiter, rep.LitersPer100Km)
}

func summaryCard(rep reports.DailyReport) string {
	return fmt.Sprintf(`🧾 RESUMO DO DIA

🚖 Corridas: %d
💵 Faturamento: R$ %.2f
⛽ Combustível: R$ %.2f

📊 Resultado:
   • Lucro: R$ %.2f
   • Lucro por corrida: R$ %.2f
   • Margem: %.2f%%`, rep.Rides, rep.Earned, rep.FuelSpent, rep.Profit, rep.ProfitPerRide, rep.MarginPct)
}

func historyCard(recs []history.Record) string {
	var b strings.Builder
	b.WriteString("🗂️ ÚLTIMOS ORÇAMENTOS\n")
	for _, rec := range recs {
		b.WriteString("\n")
		fmt.Fprintf(&b, "• %s — R$ %.2f (%.2f km", rec.CreatedAt.Format("02/01 15:04"), rec.Total, rec.DistanceKm)
		if rec.OriginLabel != "" && rec.DestLabel != "" {
			fmt.Fprintf(&b, ", %s → %s", rec.OriginLabel, rec.DestLabel)
		}
		b.WriteString(")")
	}
	return b.String()
}
